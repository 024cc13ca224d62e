package postgres

type officialTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type officialAssignmentRow struct {
	MatchID string `db:"match_id"`
	Name    string `db:"name"`
	Role    string `db:"role"`
}
