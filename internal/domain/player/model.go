package player

// Summary is a player row with career aggregates recomputed after ingestion.
type Summary struct {
	ID            int64
	Name          string
	TeamName      string
	Role          string
	BattingStyle  string
	BowlingStyle  string
	Nationality   string
	MatchesPlayed int
	RunsScored    int
	WicketsTaken  int
}

// Filter narrows player listings. Both fields are optional and conjunctive.
type Filter struct {
	Name     string
	TeamName string
}
