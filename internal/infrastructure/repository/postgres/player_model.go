package postgres

import "database/sql"

type playerTableModel struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	TeamID        sql.NullInt64  `db:"team_id"`
	Role          sql.NullString `db:"role"`
	BattingStyle  sql.NullString `db:"batting_style"`
	BowlingStyle  sql.NullString `db:"bowling_style"`
	Nationality   sql.NullString `db:"nationality"`
	MatchesPlayed int            `db:"matches_played"`
	RunsScored    int            `db:"runs_scored"`
	WicketsTaken  int            `db:"wickets_taken"`
}

type playerSummaryRow struct {
	playerTableModel
	TeamName sql.NullString `db:"team_name"`
}
