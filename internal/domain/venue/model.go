package venue

// Summary is a venue row with its hosted-match count.
type Summary struct {
	ID           int64
	Name         string
	City         string
	Country      string
	Capacity     int
	TotalMatches int
}

// Filter narrows venue listings. Both fields are optional and conjunctive.
type Filter struct {
	Name string
	City string
}
