package match

import "time"

// Summary is one match row joined out to its venue, teams, and key people.
type Summary struct {
	MatchID       string
	Season        string
	MatchDate     time.Time
	City          string
	Venue         string
	Team1         string
	Team2         string
	TossWinner    string
	TossDecision  string
	Winner        string
	Result        string
	ResultMargin  string
	PlayerOfMatch string
}

// Delivery is one ball as served by the ball-by-ball query, with every
// participant resolved to a name.
type Delivery struct {
	InningsNumber   int
	BattingTeam     string
	OverNumber      int
	BallNumber      int
	Batter          string
	Bowler          string
	NonStriker      string
	RunsBatter      int
	RunsExtras      int
	RunsTotal       int
	ExtrasType      string
	WicketType      string
	PlayerDismissed string
	Fielder         string
}

// DetailsFilter narrows match listings. All fields are optional and
// conjunctive.
type DetailsFilter struct {
	MatchID  string
	Season   string
	TeamName string
	Venue    string
}

// DeliveryFilter selects balls within one match. Innings and the over bounds
// are optional; the over range is inclusive on both ends.
type DeliveryFilter struct {
	MatchID   string
	Innings   *int
	OverStart *int
	OverEnd   *int
}

// BattingStats aggregates one player's batting within a scope of matches.
type BattingStats struct {
	Matches      int     `json:"matches"`
	Runs         int     `json:"runs"`
	BallsFaced   int     `json:"balls_faced"`
	Fours        int     `json:"fours"`
	Sixes        int     `json:"sixes"`
	Dismissals   int     `json:"dismissals"`
	StrikeRate   float64 `json:"strike_rate"`
	HighestScore int     `json:"highest_score"`
}

// BowlingStats aggregates one player's bowling within a scope of matches.
// Wickets counts only dismissals credited to the bowler.
type BowlingStats struct {
	Matches       int     `json:"matches"`
	BallsBowled   int     `json:"balls_bowled"`
	RunsConceded  int     `json:"runs_conceded"`
	Wickets       int     `json:"wickets"`
	EconomyRate   float64 `json:"economy_rate"`
	DotBalls      int     `json:"dot_balls"`
	ExtrasGranted int     `json:"extras_granted"`
}

// FieldingStats aggregates catches, run outs, and stumpings where the player
// acted as the fielder.
type FieldingStats struct {
	Catches   int `json:"catches"`
	RunOuts   int `json:"run_outs"`
	Stumpings int `json:"stumpings"`
}

// Performance bundles the per-discipline aggregates for one player. Sections
// not requested stay nil and are omitted from responses.
type Performance struct {
	PlayerName string         `json:"player_name"`
	Batting    *BattingStats  `json:"batting,omitempty"`
	Bowling    *BowlingStats  `json:"bowling,omitempty"`
	Fielding   *FieldingStats `json:"fielding,omitempty"`
}

// PerformanceFilter scopes performance aggregation. PlayerName is required;
// MatchID narrows to a single match.
type PerformanceFilter struct {
	PlayerName string
	MatchID    string
}
