package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ovalline/cricketstats/internal/domain/match"
	"github.com/ovalline/cricketstats/internal/platform/cache"
	"github.com/ovalline/cricketstats/internal/platform/logging"
)

// IngestionService validates full match records and hands them to the writer.
// A record is rejected whole; there are no partial writes.
type IngestionService struct {
	writer   match.Writer
	cache    *cache.Store
	logger   *logging.Logger
	validate *validator.Validate
}

func NewIngestionService(writer match.Writer, store *cache.Store, logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		writer:   writer,
		cache:    store,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *IngestionService) Ingest(ctx context.Context, record *match.Record) error {
	ctx, span := startUsecaseSpan(ctx, "IngestionService.Ingest")
	defer span.End()

	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrMalformedRecord)
	}
	if err := s.validate.StructCtx(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if err := checkInningsConsistency(record); err != nil {
		return err
	}

	if err := s.writer.Write(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFault, err)
	}

	// Career aggregates span matches, so any cached query result may now
	// be stale.
	if s.cache != nil {
		s.cache.Flush(ctx)
	}

	deliveries := 0
	for _, innings := range record.Innings {
		deliveries += len(innings.Deliveries)
	}
	s.logger.InfoContext(ctx, "match ingested",
		"match_id", record.MatchID,
		"season", record.Season,
		"innings", len(record.Innings),
		"deliveries", deliveries,
	)

	return nil
}

func checkInningsConsistency(record *match.Record) error {
	sides := map[string]struct{}{
		strings.ToLower(record.Team1): {},
		strings.ToLower(record.Team2): {},
	}

	seenInnings := map[int]struct{}{}
	for _, innings := range record.Innings {
		if _, ok := seenInnings[innings.Number]; ok {
			return fmt.Errorf("%w: duplicate innings %d", ErrMalformedRecord, innings.Number)
		}
		seenInnings[innings.Number] = struct{}{}

		if _, ok := sides[strings.ToLower(innings.BattingTeam)]; !ok {
			return fmt.Errorf("%w: batting team %q is not playing in match %s",
				ErrMalformedRecord, innings.BattingTeam, record.MatchID)
		}

		type ballKey struct{ over, ball int }
		seenBalls := make(map[ballKey]struct{}, len(innings.Deliveries))
		for _, d := range innings.Deliveries {
			key := ballKey{over: d.Over, ball: d.Ball}
			if _, ok := seenBalls[key]; ok {
				return fmt.Errorf("%w: duplicate ball %d.%d in innings %d",
					ErrMalformedRecord, d.Over, d.Ball, innings.Number)
			}
			seenBalls[key] = struct{}{}
		}
	}

	return nil
}
