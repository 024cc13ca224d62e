package postgres

import "database/sql"

type teamTableModel struct {
	ID               int64          `db:"id"`
	Name             string         `db:"name"`
	ShortName        sql.NullString `db:"short_name"`
	City             sql.NullString `db:"city"`
	HomeVenue        sql.NullString `db:"home_venue"`
	ChampionshipsWon int            `db:"championships_won"`
	Wins             int            `db:"wins"`
	Losses           int            `db:"losses"`
}

type teamSummaryRow struct {
	teamTableModel
	TotalMatches int `db:"total_matches"`
}
