package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID              string         `db:"id"`
	Season          string         `db:"season"`
	MatchDate       time.Time      `db:"match_date"`
	City            sql.NullString `db:"city"`
	VenueID         int64          `db:"venue_id"`
	Team1ID         int64          `db:"team1_id"`
	Team2ID         int64          `db:"team2_id"`
	TossWinnerID    sql.NullInt64  `db:"toss_winner_id"`
	TossDecision    sql.NullString `db:"toss_decision"`
	WinnerID        sql.NullInt64  `db:"winner_id"`
	Result          sql.NullString `db:"result"`
	ResultMargin    sql.NullString `db:"result_margin"`
	PlayerOfMatchID sql.NullInt64  `db:"player_of_match_id"`
}

type matchSummaryRow struct {
	ID            string         `db:"id"`
	Season        string         `db:"season"`
	MatchDate     time.Time      `db:"match_date"`
	City          sql.NullString `db:"city"`
	Venue         string         `db:"venue"`
	Team1         string         `db:"team1"`
	Team2         string         `db:"team2"`
	TossWinner    sql.NullString `db:"toss_winner"`
	TossDecision  sql.NullString `db:"toss_decision"`
	Winner        sql.NullString `db:"winner"`
	Result        sql.NullString `db:"result"`
	ResultMargin  sql.NullString `db:"result_margin"`
	PlayerOfMatch sql.NullString `db:"player_of_match"`
}

type deliveryRow struct {
	InningsNumber   int            `db:"innings_number"`
	BattingTeam     string         `db:"batting_team"`
	OverNumber      int            `db:"over_number"`
	BallNumber      int            `db:"ball_number"`
	Batter          string         `db:"batter"`
	Bowler          string         `db:"bowler"`
	NonStriker      string         `db:"non_striker"`
	RunsBatter      int            `db:"runs_batter"`
	RunsExtras      int            `db:"runs_extras"`
	RunsTotal       int            `db:"runs_total"`
	ExtrasType      sql.NullString `db:"extras_type"`
	WicketType      sql.NullString `db:"wicket_type"`
	PlayerDismissed sql.NullString `db:"player_dismissed"`
	Fielder         sql.NullString `db:"fielder"`
}

type battingMatchRow struct {
	MatchID    string `db:"match_id"`
	Runs       int    `db:"runs"`
	BallsFaced int    `db:"balls_faced"`
	Fours      int    `db:"fours"`
	Sixes      int    `db:"sixes"`
	Dismissals int    `db:"dismissals"`
}

type bowlingMatchRow struct {
	MatchID      string `db:"match_id"`
	BallsBowled  int    `db:"balls_bowled"`
	RunsConceded int    `db:"runs_conceded"`
	Wickets      int    `db:"wickets"`
	DotBalls     int    `db:"dot_balls"`
	Extras       int    `db:"extras"`
}
