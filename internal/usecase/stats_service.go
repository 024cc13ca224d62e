package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ovalline/cricketstats/internal/domain/match"
	"github.com/ovalline/cricketstats/internal/domain/official"
	"github.com/ovalline/cricketstats/internal/domain/player"
	"github.com/ovalline/cricketstats/internal/domain/team"
	"github.com/ovalline/cricketstats/internal/domain/venue"
	"github.com/ovalline/cricketstats/internal/platform/cache"
	"github.com/ovalline/cricketstats/internal/platform/logging"
)

// Stat sections a performance request may ask for.
const (
	StatTypeBatting  = "batting"
	StatTypeBowling  = "bowling"
	StatTypeFielding = "fielding"
	StatTypeAll      = "all"
)

const maxInningsNumber = 4

// BallByBall is the ball-by-ball answer: the match header plus the selected
// deliveries in play order.
type BallByBall struct {
	MatchFound      bool
	MatchInfo       match.Summary
	Deliveries      []match.Delivery
	TotalDeliveries int
	OversCovered    int
}

// StatsService answers the read-side queries. Filters are conjunctive and an
// empty answer is a valid answer, never an error.
type StatsService struct {
	teams     team.Repository
	players   player.Repository
	venues    venue.Repository
	officials official.Repository
	matches   match.Repository
	cache     *cache.Store
	logger    *logging.Logger
}

func NewStatsService(
	teams team.Repository,
	players player.Repository,
	venues venue.Repository,
	officials official.Repository,
	matches match.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{
		teams:     teams,
		players:   players,
		venues:    venues,
		officials: officials,
		matches:   matches,
		cache:     store,
		logger:    logger,
	}
}

func (s *StatsService) TeamInfo(ctx context.Context, filter team.Filter) ([]team.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.TeamInfo")
	defer span.End()

	key := cacheKey("teams", filter.Name)
	return cachedList(ctx, s.cache, key, func(ctx context.Context) ([]team.Summary, error) {
		out, err := s.teams.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreFault, err)
		}
		return out, nil
	})
}

func (s *StatsService) PlayerInfo(ctx context.Context, filter player.Filter) ([]player.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.PlayerInfo")
	defer span.End()

	key := cacheKey("players", filter.Name, filter.TeamName)
	return cachedList(ctx, s.cache, key, func(ctx context.Context) ([]player.Summary, error) {
		out, err := s.players.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreFault, err)
		}
		return out, nil
	})
}

func (s *StatsService) MatchDetails(ctx context.Context, filter match.DetailsFilter) ([]match.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.MatchDetails")
	defer span.End()

	key := cacheKey("matches", filter.MatchID, filter.Season, filter.TeamName, filter.Venue)
	return cachedList(ctx, s.cache, key, func(ctx context.Context) ([]match.Summary, error) {
		out, err := s.matches.ListSummaries(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreFault, err)
		}
		return out, nil
	})
}

func (s *StatsService) BallByBall(ctx context.Context, filter match.DeliveryFilter) (BallByBall, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.BallByBall")
	defer span.End()

	if filter.MatchID == "" {
		return BallByBall{}, fmt.Errorf("%w: match_id", ErrMissingArgument)
	}
	if filter.Innings != nil && (*filter.Innings < 1 || *filter.Innings > maxInningsNumber) {
		return BallByBall{}, fmt.Errorf("%w: innings must be between 1 and %d", ErrInvalidFilter, maxInningsNumber)
	}
	if filter.OverStart != nil && *filter.OverStart < 0 {
		return BallByBall{}, fmt.Errorf("%w: over_start cannot be negative", ErrInvalidFilter)
	}
	if filter.OverEnd != nil && *filter.OverEnd < 0 {
		return BallByBall{}, fmt.Errorf("%w: over_end cannot be negative", ErrInvalidFilter)
	}
	if filter.OverStart != nil && filter.OverEnd != nil && *filter.OverEnd < *filter.OverStart {
		return BallByBall{}, fmt.Errorf("%w: over_end is before over_start", ErrInvalidFilter)
	}

	summary, found, err := s.matches.GetSummary(ctx, filter.MatchID)
	if err != nil {
		return BallByBall{}, fmt.Errorf("%w: %v", ErrStoreFault, err)
	}
	if !found {
		return BallByBall{}, nil
	}

	deliveries, err := s.matches.ListDeliveries(ctx, filter)
	if err != nil {
		return BallByBall{}, fmt.Errorf("%w: %v", ErrStoreFault, err)
	}

	type overKey struct{ innings, over int }
	overs := map[overKey]struct{}{}
	for _, d := range deliveries {
		overs[overKey{innings: d.InningsNumber, over: d.OverNumber}] = struct{}{}
	}

	return BallByBall{
		MatchFound:      true,
		MatchInfo:       summary,
		Deliveries:      deliveries,
		TotalDeliveries: len(deliveries),
		OversCovered:    len(overs),
	}, nil
}

func (s *StatsService) PlayerPerformance(ctx context.Context, filter match.PerformanceFilter, statType string) (match.Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.PlayerPerformance")
	defer span.End()

	if filter.PlayerName == "" {
		return match.Performance{}, fmt.Errorf("%w: player_name", ErrMissingArgument)
	}
	if statType == "" {
		statType = StatTypeAll
	}
	switch statType {
	case StatTypeBatting, StatTypeBowling, StatTypeFielding, StatTypeAll:
	default:
		return match.Performance{}, fmt.Errorf("%w: stat_type %q", ErrInvalidFilter, statType)
	}

	out := match.Performance{PlayerName: filter.PlayerName}

	exists, err := s.matches.PlayerExists(ctx, filter.PlayerName)
	if err != nil {
		return match.Performance{}, fmt.Errorf("%w: %v", ErrStoreFault, err)
	}
	if !exists {
		return out, nil
	}

	if statType == StatTypeBatting || statType == StatTypeAll {
		stats, err := s.matches.BattingStats(ctx, filter)
		if err != nil {
			return match.Performance{}, fmt.Errorf("%w: %v", ErrStoreFault, err)
		}
		out.Batting = &stats
	}
	if statType == StatTypeBowling || statType == StatTypeAll {
		stats, err := s.matches.BowlingStats(ctx, filter)
		if err != nil {
			return match.Performance{}, fmt.Errorf("%w: %v", ErrStoreFault, err)
		}
		out.Bowling = &stats
	}
	if statType == StatTypeFielding || statType == StatTypeAll {
		stats, err := s.matches.FieldingStats(ctx, filter)
		if err != nil {
			return match.Performance{}, fmt.Errorf("%w: %v", ErrStoreFault, err)
		}
		out.Fielding = &stats
	}

	return out, nil
}

func (s *StatsService) MatchOfficials(ctx context.Context, filter official.Filter) ([]official.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.MatchOfficials")
	defer span.End()

	key := cacheKey("officials", filter.MatchID, filter.OfficialName)
	return cachedList(ctx, s.cache, key, func(ctx context.Context) ([]official.Assignment, error) {
		out, err := s.officials.ListAssignments(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreFault, err)
		}
		return out, nil
	})
}

func (s *StatsService) VenueInfo(ctx context.Context, filter venue.Filter) ([]venue.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.VenueInfo")
	defer span.End()

	key := cacheKey("venues", filter.Name, filter.City)
	return cachedList(ctx, s.cache, key, func(ctx context.Context) ([]venue.Summary, error) {
		out, err := s.venues.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreFault, err)
		}
		return out, nil
	})
}

// cacheKey joins filter values into a lookup key. Values are quoted so a
// separator character inside one filter cannot collide with a different
// filter set.
func cacheKey(op string, fields ...string) string {
	var b strings.Builder
	b.WriteString(op)
	for _, f := range fields {
		b.WriteByte('|')
		b.WriteString(strconv.Quote(f))
	}
	return b.String()
}

func cachedList[T any](ctx context.Context, store *cache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if store == nil {
		return load(ctx)
	}

	value, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		return nil, err
	}

	out, ok := value.([]T)
	if !ok {
		return load(ctx)
	}
	return out, nil
}
