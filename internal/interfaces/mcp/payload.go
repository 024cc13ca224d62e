package mcp

import "github.com/ovalline/cricketstats/internal/domain/match"

type teamPayload struct {
	Name             string `json:"name"`
	ShortName        string `json:"short_name,omitempty"`
	City             string `json:"city,omitempty"`
	HomeVenue        string `json:"home_venue,omitempty"`
	ChampionshipsWon int    `json:"championships_won"`
	TotalMatches     int    `json:"total_matches"`
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
}

type teamListPayload struct {
	Teams      []teamPayload `json:"teams"`
	TotalTeams int           `json:"total_teams"`
}

type playerPayload struct {
	Name          string `json:"name"`
	Team          string `json:"team,omitempty"`
	Role          string `json:"role,omitempty"`
	BattingStyle  string `json:"batting_style,omitempty"`
	BowlingStyle  string `json:"bowling_style,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
	MatchesPlayed int    `json:"matches_played"`
	RunsScored    int    `json:"runs_scored"`
	WicketsTaken  int    `json:"wickets_taken"`
}

type playerListPayload struct {
	Players      []playerPayload `json:"players"`
	TotalPlayers int             `json:"total_players"`
}

type matchPayload struct {
	MatchID       string `json:"match_id"`
	Season        string `json:"season"`
	Date          string `json:"date"`
	City          string `json:"city,omitempty"`
	Venue         string `json:"venue"`
	Team1         string `json:"team1"`
	Team2         string `json:"team2"`
	TossWinner    string `json:"toss_winner,omitempty"`
	TossDecision  string `json:"toss_decision,omitempty"`
	Winner        string `json:"winner,omitempty"`
	Result        string `json:"result,omitempty"`
	ResultMargin  string `json:"result_margin,omitempty"`
	PlayerOfMatch string `json:"player_of_match,omitempty"`
}

type matchListPayload struct {
	Matches      []matchPayload `json:"matches"`
	TotalMatches int            `json:"total_matches"`
}

type deliveryPayload struct {
	Innings         int    `json:"innings"`
	BattingTeam     string `json:"batting_team"`
	Over            int    `json:"over"`
	Ball            int    `json:"ball"`
	Batter          string `json:"batter"`
	Bowler          string `json:"bowler"`
	NonStriker      string `json:"non_striker"`
	RunsBatter      int    `json:"runs_batter"`
	RunsExtras      int    `json:"runs_extras"`
	RunsTotal       int    `json:"runs_total"`
	ExtrasType      string `json:"extras_type,omitempty"`
	WicketType      string `json:"wicket_type,omitempty"`
	PlayerDismissed string `json:"player_dismissed,omitempty"`
	Fielder         string `json:"fielder,omitempty"`
}

type ballByBallPayload struct {
	MatchInfo       *matchPayload     `json:"match_info"`
	Deliveries      []deliveryPayload `json:"deliveries"`
	TotalDeliveries int               `json:"total_deliveries"`
	OversCovered    int               `json:"overs_covered"`
}

type performancePayload struct {
	PlayerName  string              `json:"player_name"`
	MatchID     string              `json:"match_id,omitempty"`
	StatType    string              `json:"stat_type"`
	Performance performanceSections `json:"performance"`
}

type performanceSections struct {
	Batting  *match.BattingStats  `json:"batting,omitempty"`
	Bowling  *match.BowlingStats  `json:"bowling,omitempty"`
	Fielding *match.FieldingStats `json:"fielding,omitempty"`
}

type officialPayload struct {
	MatchID string `json:"match_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

type officialListPayload struct {
	Officials      []officialPayload `json:"officials"`
	TotalOfficials int               `json:"total_officials"`
}

type venuePayload struct {
	Name         string `json:"name"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	Capacity     int    `json:"capacity,omitempty"`
	TotalMatches int    `json:"total_matches"`
}

type venueListPayload struct {
	Venues      []venuePayload `json:"venues"`
	TotalVenues int            `json:"total_venues"`
}

func matchPayloadFrom(m match.Summary) matchPayload {
	return matchPayload{
		MatchID:       m.MatchID,
		Season:        m.Season,
		Date:          m.MatchDate.Format(dateLayout),
		City:          m.City,
		Venue:         m.Venue,
		Team1:         m.Team1,
		Team2:         m.Team2,
		TossWinner:    m.TossWinner,
		TossDecision:  m.TossDecision,
		Winner:        m.Winner,
		Result:        m.Result,
		ResultMargin:  m.ResultMargin,
		PlayerOfMatch: m.PlayerOfMatch,
	}
}
