package team

// Summary is a team row enriched with its recomputed career aggregates.
type Summary struct {
	ID               int64
	Name             string
	ShortName        string
	City             string
	HomeVenue        string
	ChampionshipsWon int
	Wins             int
	Losses           int
	TotalMatches     int
}

// Filter narrows team listings. A zero value lists every team.
type Filter struct {
	Name string
}
