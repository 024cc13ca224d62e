package official

// Assignment is one official serving one match in a specific role.
type Assignment struct {
	MatchID string
	Name    string
	Role    string
}

// Filter narrows assignment listings. Both fields are optional and conjunctive.
type Filter struct {
	MatchID      string
	OfficialName string
}
