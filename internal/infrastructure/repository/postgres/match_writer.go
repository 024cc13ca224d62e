package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/ovalline/cricketstats/internal/domain/match"
	qb "github.com/ovalline/cricketstats/internal/platform/querybuilder"
)

// deliveryInsertChunk keeps a multi-row insert comfortably below the
// placeholder limit of the Postgres wire protocol.
const deliveryInsertChunk = 500

const advisoryLockQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

const upsertVenueQuery = `
INSERT INTO venues (name, city)
VALUES ($1, NULLIF($2, ''))
ON CONFLICT ((lower(name))) DO UPDATE SET city = COALESCE(venues.city, EXCLUDED.city)
RETURNING id`

const upsertTeamQuery = `
INSERT INTO teams (name)
VALUES ($1)
ON CONFLICT ((lower(name))) DO UPDATE SET name = teams.name
RETURNING id`

const upsertOfficialQuery = `
INSERT INTO officials (name)
VALUES ($1)
ON CONFLICT ((lower(name))) DO UPDATE SET name = officials.name
RETURNING id`

const upsertPlayerQuery = `
INSERT INTO players (name, team_id, role, batting_style, bowling_style, nationality)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
ON CONFLICT ((lower(name))) DO UPDATE SET
	team_id = COALESCE(EXCLUDED.team_id, players.team_id),
	role = COALESCE(EXCLUDED.role, players.role),
	batting_style = COALESCE(EXCLUDED.batting_style, players.batting_style),
	bowling_style = COALESCE(EXCLUDED.bowling_style, players.bowling_style),
	nationality = COALESCE(EXCLUDED.nationality, players.nationality)
RETURNING id`

const recomputeTeamStatsQuery = `
UPDATE teams t SET
	wins = (SELECT COUNT(*) FROM matches m WHERE m.winner_id = t.id),
	losses = (SELECT COUNT(*) FROM matches m
	          WHERE m.winner_id IS NOT NULL AND m.winner_id <> t.id
	            AND (m.team1_id = t.id OR m.team2_id = t.id))
WHERE t.id = ANY($1)`

const recomputePlayerStatsQuery = `
UPDATE players p SET
	matches_played = (SELECT COUNT(DISTINCT i.match_id) FROM deliveries d
	                  JOIN innings i ON i.id = d.innings_id
	                  WHERE d.batter_id = p.id OR d.bowler_id = p.id
	                     OR d.non_striker_id = p.id OR d.fielder_id = p.id),
	runs_scored = COALESCE((SELECT SUM(d.runs_batter) FROM deliveries d WHERE d.batter_id = p.id), 0),
	wickets_taken = (SELECT COUNT(*) FROM deliveries d
	                 WHERE d.bowler_id = p.id
	                   AND COALESCE(d.wicket_type, '') <> ''
	                   AND d.wicket_type NOT IN ` + nonBowlerWickets + `)
WHERE p.id = ANY($1)`

// MatchWriter rewrites one match per transaction. Innings and deliveries are
// replaced wholesale, then every aggregate the match touched is recomputed
// from the stored deliveries, so re-ingesting a file never double counts.
type MatchWriter struct {
	db *sqlx.DB
}

func NewMatchWriter(db *sqlx.DB) *MatchWriter {
	return &MatchWriter{db: db}
}

func (w *MatchWriter) Write(ctx context.Context, record *match.Record) error {
	matchDate, err := record.MatchDate()
	if err != nil {
		return fmt.Errorf("parse match date: %w", err)
	}

	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Serializes concurrent writes of the same match without blocking
	// writes of other matches.
	if _, err := tx.ExecContext(ctx, advisoryLockQuery, record.MatchID); err != nil {
		return fmt.Errorf("acquire match lock: %w", err)
	}

	venueID, err := upsertReturningID(ctx, tx, upsertVenueQuery, record.VenueName, record.City)
	if err != nil {
		return fmt.Errorf("upsert venue: %w", err)
	}

	teamIDs := map[string]int64{}
	teamNames := []string{record.Team1, record.Team2, record.TossWinner, record.Winner}
	for _, innings := range record.Innings {
		teamNames = append(teamNames, innings.BattingTeam)
	}
	for _, name := range teamNames {
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := teamIDs[key]; ok {
			continue
		}
		id, err := upsertReturningID(ctx, tx, upsertTeamQuery, name)
		if err != nil {
			return fmt.Errorf("upsert team %q: %w", name, err)
		}
		teamIDs[key] = id
	}

	playerIDs, err := w.upsertPlayers(ctx, tx, record, teamIDs)
	if err != nil {
		return err
	}

	if err := w.upsertMatch(ctx, tx, record, matchDate, venueID, teamIDs, playerIDs); err != nil {
		return err
	}
	if err := w.replaceOfficials(ctx, tx, record); err != nil {
		return err
	}
	if err := w.replaceInnings(ctx, tx, record, teamIDs, playerIDs); err != nil {
		return err
	}
	if err := w.recomputeAggregates(ctx, tx, record, venueID, teamIDs, playerIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest transaction: %w", err)
	}

	return nil
}

func (w *MatchWriter) upsertPlayers(ctx context.Context, tx *sqlx.Tx, record *match.Record, teamIDs map[string]int64) (map[string]int64, error) {
	roster := make(map[string]match.PlayerRecord, len(record.Players))
	order := make([]string, 0, len(record.Players))

	add := func(name string) {
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if _, ok := roster[key]; ok {
			return
		}
		roster[key] = match.PlayerRecord{Name: name}
		order = append(order, key)
	}

	for _, p := range record.Players {
		key := strings.ToLower(p.Name)
		if _, ok := roster[key]; !ok {
			order = append(order, key)
		}
		roster[key] = p
	}
	add(record.PlayerOfMatch)
	for _, innings := range record.Innings {
		for _, d := range innings.Deliveries {
			add(d.Batter)
			add(d.Bowler)
			add(d.NonStriker)
			add(d.PlayerDismissed)
			add(d.Fielder)
		}
	}

	ids := make(map[string]int64, len(roster))
	for _, key := range order {
		p := roster[key]
		teamID := nullInt64(teamIDs[strings.ToLower(p.TeamName)])
		id, err := upsertReturningID(ctx, tx, upsertPlayerQuery,
			p.Name, teamID, p.Role, p.BattingStyle, p.BowlingStyle, p.Nationality)
		if err != nil {
			return nil, fmt.Errorf("upsert player %q: %w", p.Name, err)
		}
		ids[key] = id
	}

	return ids, nil
}

func (w *MatchWriter) upsertMatch(ctx context.Context, tx *sqlx.Tx, record *match.Record, matchDate time.Time, venueID int64, teamIDs, playerIDs map[string]int64) error {
	row := matchTableModel{
		ID:              record.MatchID,
		Season:          record.Season,
		MatchDate:       matchDate,
		City:            nullString(record.City),
		VenueID:         venueID,
		Team1ID:         teamIDs[strings.ToLower(record.Team1)],
		Team2ID:         teamIDs[strings.ToLower(record.Team2)],
		TossWinnerID:    nullInt64(teamIDs[strings.ToLower(record.TossWinner)]),
		TossDecision:    nullString(record.TossDecision),
		WinnerID:        nullInt64(teamIDs[strings.ToLower(record.Winner)]),
		Result:          nullString(record.Result),
		ResultMargin:    nullString(record.ResultMargin),
		PlayerOfMatchID: nullInt64(playerIDs[strings.ToLower(record.PlayerOfMatch)]),
	}

	query, args, err := qb.InsertModel("matches", row, `ON CONFLICT (id) DO UPDATE SET
		season = EXCLUDED.season,
		match_date = EXCLUDED.match_date,
		city = EXCLUDED.city,
		venue_id = EXCLUDED.venue_id,
		team1_id = EXCLUDED.team1_id,
		team2_id = EXCLUDED.team2_id,
		toss_winner_id = EXCLUDED.toss_winner_id,
		toss_decision = EXCLUDED.toss_decision,
		winner_id = EXCLUDED.winner_id,
		result = EXCLUDED.result,
		result_margin = EXCLUDED.result_margin,
		player_of_match_id = EXCLUDED.player_of_match_id`)
	if err != nil {
		return fmt.Errorf("build upsert match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match: %w", err)
	}

	return nil
}

func (w *MatchWriter) replaceOfficials(ctx context.Context, tx *sqlx.Tx, record *match.Record) error {
	query, args, err := qb.DeleteFrom("match_officials").Where(qb.Eq("match_id", record.MatchID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete officials query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete officials: %w", err)
	}

	if len(record.Officials) == 0 {
		return nil
	}

	builder := qb.InsertInto("match_officials").
		Columns("match_id", "official_id", "role").
		Suffix("ON CONFLICT DO NOTHING")
	for _, o := range record.Officials {
		id, err := upsertReturningID(ctx, tx, upsertOfficialQuery, o.Name)
		if err != nil {
			return fmt.Errorf("upsert official %q: %w", o.Name, err)
		}
		builder = builder.Values(record.MatchID, id, o.Role)
	}

	query, args, err = builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert officials query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert officials: %w", err)
	}

	return nil
}

func (w *MatchWriter) replaceInnings(ctx context.Context, tx *sqlx.Tx, record *match.Record, teamIDs, playerIDs map[string]int64) error {
	query, args, err := qb.DeleteFrom("innings").Where(qb.Eq("match_id", record.MatchID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete innings query: %w", err)
	}
	// Deliveries go with the innings via ON DELETE CASCADE.
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete innings: %w", err)
	}

	for _, innings := range record.Innings {
		var inningsID int64
		insertInnings := "INSERT INTO innings (match_id, innings_number, batting_team_id) VALUES ($1, $2, $3) RETURNING id"
		battingTeamID := teamIDs[strings.ToLower(innings.BattingTeam)]
		if err := tx.QueryRowxContext(ctx, insertInnings, record.MatchID, innings.Number, battingTeamID).Scan(&inningsID); err != nil {
			return fmt.Errorf("insert innings %d: %w", innings.Number, err)
		}

		for start := 0; start < len(innings.Deliveries); start += deliveryInsertChunk {
			end := min(start+deliveryInsertChunk, len(innings.Deliveries))
			if err := w.insertDeliveries(ctx, tx, inningsID, innings.Deliveries[start:end], playerIDs); err != nil {
				return fmt.Errorf("insert deliveries for innings %d: %w", innings.Number, err)
			}
		}
	}

	return nil
}

func (w *MatchWriter) insertDeliveries(ctx context.Context, tx *sqlx.Tx, inningsID int64, deliveries []match.DeliveryRecord, playerIDs map[string]int64) error {
	builder := qb.InsertInto("deliveries").Columns(
		"innings_id",
		"over_number",
		"ball_number",
		"batter_id",
		"bowler_id",
		"non_striker_id",
		"runs_batter",
		"runs_extras",
		"runs_total",
		"extras_type",
		"wicket_type",
		"player_dismissed_id",
		"fielder_id",
	)

	for _, d := range deliveries {
		builder = builder.Values(
			inningsID,
			d.Over,
			d.Ball,
			playerIDs[strings.ToLower(d.Batter)],
			playerIDs[strings.ToLower(d.Bowler)],
			playerIDs[strings.ToLower(d.NonStriker)],
			d.RunsBatter,
			d.RunsExtras,
			d.RunsTotal,
			nullString(d.ExtrasType),
			nullString(d.WicketType),
			nullInt64(playerIDs[strings.ToLower(d.PlayerDismissed)]),
			nullInt64(playerIDs[strings.ToLower(d.Fielder)]),
		)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert deliveries query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert deliveries: %w", err)
	}

	return nil
}

func (w *MatchWriter) recomputeAggregates(ctx context.Context, tx *sqlx.Tx, record *match.Record, venueID int64, teamIDs, playerIDs map[string]int64) error {
	if _, err := tx.ExecContext(ctx, recomputeTeamStatsQuery, pq.Array(idValues(teamIDs))); err != nil {
		return fmt.Errorf("recompute team stats: %w", err)
	}

	query, args, err := qb.Update("venues").
		SetExpr("match_count", "(SELECT COUNT(*) FROM matches m WHERE m.venue_id = venues.id)").
		Where(qb.Eq("id", venueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build recompute venue query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("recompute venue count: %w", err)
	}

	if len(playerIDs) > 0 {
		if _, err := tx.ExecContext(ctx, recomputePlayerStatsQuery, pq.Array(idValues(playerIDs))); err != nil {
			return fmt.Errorf("recompute player stats: %w", err)
		}
	}

	// First listed side hosts the match; only fill home_venue when unset so
	// a later match never flips an established home ground.
	setHome := "UPDATE teams SET home_venue = $2 WHERE id = $1 AND COALESCE(home_venue, '') = ''"
	if _, err := tx.ExecContext(ctx, setHome, teamIDs[strings.ToLower(record.Team1)], record.VenueName); err != nil {
		return fmt.Errorf("set home venue: %w", err)
	}

	return nil
}

func upsertReturningID(ctx context.Context, tx *sqlx.Tx, query string, args ...any) (int64, error) {
	var id int64
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func idValues(ids map[string]int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}
