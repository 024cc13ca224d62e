package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/jmoiron/sqlx"
	"github.com/ovalline/cricketstats/internal/domain/match"
	qb "github.com/ovalline/cricketstats/internal/platform/querybuilder"
)

// Dismissal kinds not credited to the bowler.
const nonBowlerWickets = "('run out', 'retired hurt', 'retired out', 'retired not out', 'obstructing the field')"

const battingByMatchQuery = `
SELECT i.match_id,
       COALESCE(SUM(d.runs_batter), 0) AS runs,
       COUNT(*) FILTER (WHERE COALESCE(d.extras_type, '') <> 'wides') AS balls_faced,
       COUNT(*) FILTER (WHERE d.runs_batter = 4) AS fours,
       COUNT(*) FILTER (WHERE d.runs_batter = 6) AS sixes,
       COUNT(*) FILTER (WHERE d.player_dismissed_id = d.batter_id) AS dismissals
FROM deliveries d
JOIN innings i ON i.id = d.innings_id
JOIN players p ON p.id = d.batter_id
WHERE lower(p.name) = lower($1) AND ($2 = '' OR i.match_id = $2)
GROUP BY i.match_id`

const bowlingByMatchQuery = `
SELECT i.match_id,
       COUNT(*) FILTER (WHERE COALESCE(d.extras_type, '') NOT IN ('wides', 'noballs')) AS balls_bowled,
       COALESCE(SUM(d.runs_total), 0) AS runs_conceded,
       COUNT(*) FILTER (WHERE COALESCE(d.wicket_type, '') <> '' AND d.wicket_type NOT IN ` + nonBowlerWickets + `) AS wickets,
       COUNT(*) FILTER (WHERE d.runs_total = 0) AS dot_balls,
       COALESCE(SUM(d.runs_extras), 0) AS extras
FROM deliveries d
JOIN innings i ON i.id = d.innings_id
JOIN players p ON p.id = d.bowler_id
WHERE lower(p.name) = lower($1) AND ($2 = '' OR i.match_id = $2)
GROUP BY i.match_id`

const fieldingQuery = `
SELECT COUNT(*) FILTER (WHERE d.wicket_type = 'caught') AS catches,
       COUNT(*) FILTER (WHERE d.wicket_type = 'run out') AS run_outs,
       COUNT(*) FILTER (WHERE d.wicket_type = 'stumped') AS stumpings
FROM deliveries d
JOIN innings i ON i.id = d.innings_id
JOIN players p ON p.id = d.fielder_id
WHERE lower(p.name) = lower($1) AND ($2 = '' OR i.match_id = $2)`

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListSummaries(ctx context.Context, filter match.DetailsFilter) ([]match.Summary, error) {
	builder := summarySelect()

	if filter.MatchID != "" {
		builder = builder.Where(qb.Eq("m.id", filter.MatchID))
	}
	if filter.Season != "" {
		builder = builder.Where(qb.Eq("m.season", filter.Season))
	}
	if filter.TeamName != "" {
		pattern := "%" + filter.TeamName + "%"
		builder = builder.Where(qb.Expr("(t1.name ILIKE ? OR t2.name ILIKE ?)", pattern, pattern))
	}
	if filter.Venue != "" {
		builder = builder.Where(qb.ILike("v.name", filter.Venue))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, summaryFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) GetSummary(ctx context.Context, matchID string) (match.Summary, bool, error) {
	query, args, err := summarySelect().Where(qb.Eq("m.id", matchID)).ToSQL()
	if err != nil {
		return match.Summary{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchSummaryRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Summary{}, false, nil
		}
		return match.Summary{}, false, fmt.Errorf("select match: %w", err)
	}

	return summaryFromRow(row), true, nil
}

func (r *MatchRepository) ListDeliveries(ctx context.Context, filter match.DeliveryFilter) ([]match.Delivery, error) {
	builder := qb.Select(
		"i.innings_number",
		"bt.name AS batting_team",
		"d.over_number",
		"d.ball_number",
		"b.name AS batter",
		"bw.name AS bowler",
		"ns.name AS non_striker",
		"d.runs_batter",
		"d.runs_extras",
		"d.runs_total",
		"d.extras_type",
		"d.wicket_type",
		"pd.name AS player_dismissed",
		"f.name AS fielder",
	).From("deliveries d").
		Join("innings i", "i.id = d.innings_id").
		Join("teams bt", "bt.id = i.batting_team_id").
		Join("players b", "b.id = d.batter_id").
		Join("players bw", "bw.id = d.bowler_id").
		Join("players ns", "ns.id = d.non_striker_id").
		LeftJoin("players pd", "pd.id = d.player_dismissed_id").
		LeftJoin("players f", "f.id = d.fielder_id").
		Where(qb.Eq("i.match_id", filter.MatchID)).
		OrderBy("i.innings_number", "d.over_number", "d.ball_number")

	if filter.Innings != nil {
		builder = builder.Where(qb.Eq("i.innings_number", *filter.Innings))
	}
	if filter.OverStart != nil {
		builder = builder.Where(qb.Gte("d.over_number", *filter.OverStart))
	}
	if filter.OverEnd != nil {
		builder = builder.Where(qb.Lte("d.over_number", *filter.OverEnd))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select deliveries query: %w", err)
	}

	var rows []deliveryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select deliveries: %w", err)
	}

	out := make([]match.Delivery, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Delivery{
			InningsNumber:   row.InningsNumber,
			BattingTeam:     row.BattingTeam,
			OverNumber:      row.OverNumber,
			BallNumber:      row.BallNumber,
			Batter:          row.Batter,
			Bowler:          row.Bowler,
			NonStriker:      row.NonStriker,
			RunsBatter:      row.RunsBatter,
			RunsExtras:      row.RunsExtras,
			RunsTotal:       row.RunsTotal,
			ExtrasType:      nullStringToString(row.ExtrasType),
			WicketType:      nullStringToString(row.WicketType),
			PlayerDismissed: nullStringToString(row.PlayerDismissed),
			Fielder:         nullStringToString(row.Fielder),
		})
	}

	return out, nil
}

func (r *MatchRepository) BattingStats(ctx context.Context, filter match.PerformanceFilter) (match.BattingStats, error) {
	var rows []battingMatchRow
	if err := r.db.SelectContext(ctx, &rows, battingByMatchQuery, filter.PlayerName, filter.MatchID); err != nil {
		return match.BattingStats{}, fmt.Errorf("select batting stats: %w", err)
	}

	stats := match.BattingStats{Matches: len(rows)}
	for _, row := range rows {
		stats.Runs += row.Runs
		stats.BallsFaced += row.BallsFaced
		stats.Fours += row.Fours
		stats.Sixes += row.Sixes
		stats.Dismissals += row.Dismissals
		if row.Runs > stats.HighestScore {
			stats.HighestScore = row.Runs
		}
	}
	if stats.BallsFaced > 0 {
		stats.StrikeRate = round2(float64(stats.Runs) / float64(stats.BallsFaced) * 100)
	}

	return stats, nil
}

func (r *MatchRepository) BowlingStats(ctx context.Context, filter match.PerformanceFilter) (match.BowlingStats, error) {
	var rows []bowlingMatchRow
	if err := r.db.SelectContext(ctx, &rows, bowlingByMatchQuery, filter.PlayerName, filter.MatchID); err != nil {
		return match.BowlingStats{}, fmt.Errorf("select bowling stats: %w", err)
	}

	stats := match.BowlingStats{Matches: len(rows)}
	for _, row := range rows {
		stats.BallsBowled += row.BallsBowled
		stats.RunsConceded += row.RunsConceded
		stats.Wickets += row.Wickets
		stats.DotBalls += row.DotBalls
		stats.ExtrasGranted += row.Extras
	}
	if stats.BallsBowled > 0 {
		stats.EconomyRate = round2(float64(stats.RunsConceded) / (float64(stats.BallsBowled) / 6))
	}

	return stats, nil
}

func (r *MatchRepository) FieldingStats(ctx context.Context, filter match.PerformanceFilter) (match.FieldingStats, error) {
	var stats match.FieldingStats
	row := r.db.QueryRowxContext(ctx, fieldingQuery, filter.PlayerName, filter.MatchID)
	if err := row.Scan(&stats.Catches, &stats.RunOuts, &stats.Stumpings); err != nil {
		return match.FieldingStats{}, fmt.Errorf("select fielding stats: %w", err)
	}

	return stats, nil
}

func (r *MatchRepository) PlayerExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM players WHERE lower(name) = lower($1))"
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, fmt.Errorf("select player exists: %w", err)
	}

	return exists, nil
}

func summarySelect() *qb.SelectBuilder {
	return qb.Select(
		"m.id",
		"m.season",
		"m.match_date",
		"m.city",
		"v.name AS venue",
		"t1.name AS team1",
		"t2.name AS team2",
		"tw.name AS toss_winner",
		"m.toss_decision",
		"w.name AS winner",
		"m.result",
		"m.result_margin",
		"pom.name AS player_of_match",
	).From("matches m").
		Join("venues v", "v.id = m.venue_id").
		Join("teams t1", "t1.id = m.team1_id").
		Join("teams t2", "t2.id = m.team2_id").
		LeftJoin("teams tw", "tw.id = m.toss_winner_id").
		LeftJoin("teams w", "w.id = m.winner_id").
		LeftJoin("players pom", "pom.id = m.player_of_match_id").
		OrderBy("m.match_date", "m.id")
}

func summaryFromRow(row matchSummaryRow) match.Summary {
	return match.Summary{
		MatchID:       row.ID,
		Season:        row.Season,
		MatchDate:     row.MatchDate,
		City:          nullStringToString(row.City),
		Venue:         row.Venue,
		Team1:         row.Team1,
		Team2:         row.Team2,
		TossWinner:    nullStringToString(row.TossWinner),
		TossDecision:  nullStringToString(row.TossDecision),
		Winner:        nullStringToString(row.Winner),
		Result:        nullStringToString(row.Result),
		ResultMargin:  nullStringToString(row.ResultMargin),
		PlayerOfMatch: nullStringToString(row.PlayerOfMatch),
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
