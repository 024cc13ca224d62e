package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ovalline/cricketstats/internal/domain/match"
	"github.com/ovalline/cricketstats/internal/platform/cache"
)

func TestIngestionService_Ingest(t *testing.T) {
	t.Parallel()

	writer := &stubMatchWriter{}
	service := NewIngestionService(writer, nil, nil)

	if err := service.Ingest(context.Background(), validRecord()); err != nil {
		t.Fatalf("Ingest error: %v", err)
	}
	if len(writer.written) != 1 {
		t.Fatalf("expected 1 write, got %d", len(writer.written))
	}
	if writer.written[0].MatchID != "335982" {
		t.Fatalf("unexpected match id: %s", writer.written[0].MatchID)
	}
}

func TestIngestionService_IngestRejectsNilRecord(t *testing.T) {
	t.Parallel()

	service := NewIngestionService(&stubMatchWriter{}, nil, nil)

	err := service.Ingest(context.Background(), nil)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestIngestionService_IngestRejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*match.Record){
		"missing match id":  func(r *match.Record) { r.MatchID = "" },
		"missing venue":     func(r *match.Record) { r.VenueName = "" },
		"bad date layout":   func(r *match.Record) { r.Date = "18-04-2008" },
		"same side twice":   func(r *match.Record) { r.Team2 = r.Team1 },
		"bad toss decision": func(r *match.Record) { r.TossDecision = "bowl first" },
		"bad official role": func(r *match.Record) { r.Officials[0].Role = "scorer" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			writer := &stubMatchWriter{}
			service := NewIngestionService(writer, nil, nil)

			record := validRecord()
			mutate(record)

			err := service.Ingest(context.Background(), record)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Fatalf("expected ErrMalformedRecord, got %v", err)
			}
			if len(writer.written) != 0 {
				t.Fatal("rejected record must not reach the writer")
			}
		})
	}
}

func TestIngestionService_IngestRejectsDuplicateBall(t *testing.T) {
	t.Parallel()

	service := NewIngestionService(&stubMatchWriter{}, nil, nil)

	record := validRecord()
	record.Innings[0].Deliveries[1].Ball = 1

	err := service.Ingest(context.Background(), record)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestIngestionService_IngestRejectsForeignBattingTeam(t *testing.T) {
	t.Parallel()

	service := NewIngestionService(&stubMatchWriter{}, nil, nil)

	record := validRecord()
	record.Innings[0].BattingTeam = "Mumbai Indians"

	err := service.Ingest(context.Background(), record)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestIngestionService_IngestWrapsWriterFailure(t *testing.T) {
	t.Parallel()

	writer := &stubMatchWriter{err: errors.New("connection refused")}
	service := NewIngestionService(writer, nil, nil)

	err := service.Ingest(context.Background(), validRecord())
	if !errors.Is(err, ErrStoreFault) {
		t.Fatalf("expected ErrStoreFault, got %v", err)
	}
}

func TestIngestionService_IngestFlushesCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cache.NewStore(time.Minute)
	store.Set(ctx, "teams|", []string{"stale"})

	service := NewIngestionService(&stubMatchWriter{}, store, nil)
	if err := service.Ingest(ctx, validRecord()); err != nil {
		t.Fatalf("Ingest error: %v", err)
	}

	if _, ok := store.Get(ctx, "teams|"); ok {
		t.Fatal("expected cache to be flushed after ingest")
	}
}
