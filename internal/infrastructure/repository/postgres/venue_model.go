package postgres

import "database/sql"

type venueTableModel struct {
	ID         int64          `db:"id"`
	Name       string         `db:"name"`
	City       sql.NullString `db:"city"`
	Country    sql.NullString `db:"country"`
	Capacity   sql.NullInt64  `db:"capacity"`
	MatchCount int            `db:"match_count"`
}
