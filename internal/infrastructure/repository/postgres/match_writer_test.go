package postgres

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/ovalline/cricketstats/internal/domain/match"
)

// openTestDB connects to the database named by TEST_DATABASE_URL and resets
// it to a fresh schema. Tests that call it share the database and must not
// run in parallel.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("DROP SCHEMA public CASCADE; CREATE SCHEMA public"); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "db", "migrations", "0001_init.up.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if _, err := db.Exec(string(ddl)); err != nil {
		t.Fatalf("apply migration: %v", err)
	}

	return db
}

func writerRecord() *match.Record {
	return &match.Record{
		MatchID:      "335982",
		Season:       "2007/08",
		Date:         "2008-04-18",
		City:         "Bangalore",
		VenueName:    "M Chinnaswamy Stadium",
		Team1:        "Kolkata Knight Riders",
		Team2:        "Royal Challengers Bangalore",
		TossWinner:   "Royal Challengers Bangalore",
		TossDecision: "field",
		Winner:       "Kolkata Knight Riders",
		Result:       "normal",
		ResultMargin: "140 runs",
		Officials: []match.OfficialRecord{
			{Name: "Asad Rauf", Role: "umpire"},
			{Name: "RE Koertzen", Role: "umpire"},
		},
		Innings: []match.InningsRecord{
			{
				Number:      1,
				BattingTeam: "Kolkata Knight Riders",
				Deliveries: []match.DeliveryRecord{
					{Over: 0, Ball: 1, Batter: "SC Ganguly", Bowler: "P Kumar", NonStriker: "BB McCullum", RunsBatter: 4, RunsTotal: 4},
					{Over: 0, Ball: 2, Batter: "SC Ganguly", Bowler: "P Kumar", NonStriker: "BB McCullum", RunsExtras: 1, RunsTotal: 1, ExtrasType: "wides"},
					{Over: 0, Ball: 3, Batter: "SC Ganguly", Bowler: "P Kumar", NonStriker: "BB McCullum", WicketType: "caught", PlayerDismissed: "SC Ganguly", Fielder: "R Dravid"},
				},
			},
			{
				Number:      2,
				BattingTeam: "Royal Challengers Bangalore",
				Deliveries: []match.DeliveryRecord{
					{Over: 0, Ball: 1, Batter: "R Dravid", Bowler: "I Sharma", NonStriker: "W Jaffer", RunsBatter: 1, RunsTotal: 1},
				},
			},
		},
	}
}

type ingestSnapshot struct {
	innings      int
	deliveries   int
	batterRuns   int
	bowlerWkts   int
	teamWins     int
	teamLosses   int
	venueMatches int
}

func snapshotIngest(t *testing.T, db *sqlx.DB, matchID string) ingestSnapshot {
	t.Helper()

	var s ingestSnapshot
	get := func(dest *int, query string, args ...any) {
		t.Helper()
		if err := db.Get(dest, query, args...); err != nil {
			t.Fatalf("snapshot query %q: %v", query, err)
		}
	}
	get(&s.innings, "SELECT COUNT(*) FROM innings WHERE match_id = $1", matchID)
	get(&s.deliveries, "SELECT COUNT(*) FROM deliveries d JOIN innings i ON i.id = d.innings_id WHERE i.match_id = $1", matchID)
	get(&s.batterRuns, "SELECT runs_scored FROM players WHERE name = 'SC Ganguly'")
	get(&s.bowlerWkts, "SELECT wickets_taken FROM players WHERE name = 'P Kumar'")
	get(&s.teamWins, "SELECT wins FROM teams WHERE name = 'Kolkata Knight Riders'")
	get(&s.teamLosses, "SELECT losses FROM teams WHERE name = 'Royal Challengers Bangalore'")
	get(&s.venueMatches, "SELECT match_count FROM venues WHERE name = 'M Chinnaswamy Stadium'")
	return s
}

func TestMatchWriter_ReingestKeepsCountsStable(t *testing.T) {
	db := openTestDB(t)
	writer := NewMatchWriter(db)
	record := writerRecord()
	ctx := context.Background()

	if err := writer.Write(ctx, record); err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	first := snapshotIngest(t, db, record.MatchID)

	if first.innings != 2 || first.deliveries != 4 {
		t.Fatalf("unexpected rows after first ingest: %+v", first)
	}
	if first.batterRuns != 4 || first.bowlerWkts != 1 {
		t.Fatalf("unexpected player aggregates: %+v", first)
	}
	if first.teamWins != 1 || first.teamLosses != 1 || first.venueMatches != 1 {
		t.Fatalf("unexpected team or venue aggregates: %+v", first)
	}

	if err := writer.Write(ctx, record); err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	second := snapshotIngest(t, db, record.MatchID)
	if second != first {
		t.Fatalf("re-ingest changed the stored match:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestMatchWriter_ReingestReplacesInnings(t *testing.T) {
	db := openTestDB(t)
	writer := NewMatchWriter(db)
	ctx := context.Background()

	record := writerRecord()
	if err := writer.Write(ctx, record); err != nil {
		t.Fatalf("first ingest: %v", err)
	}

	// A corrected feed drops the second innings and the dismissal.
	record.Innings = record.Innings[:1]
	record.Innings[0].Deliveries = record.Innings[0].Deliveries[:2]
	if err := writer.Write(ctx, record); err != nil {
		t.Fatalf("corrected ingest: %v", err)
	}

	got := snapshotIngest(t, db, record.MatchID)
	if got.innings != 1 || got.deliveries != 2 {
		t.Fatalf("expected the corrected ingest to replace rows, got %+v", got)
	}
	if got.bowlerWkts != 0 {
		t.Fatalf("expected the recompute to drop the dismissal, got %+v", got)
	}
}
