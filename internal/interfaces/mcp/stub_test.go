package mcp

import (
	"context"

	"github.com/ovalline/cricketstats/internal/domain/match"
	"github.com/ovalline/cricketstats/internal/domain/official"
	"github.com/ovalline/cricketstats/internal/domain/player"
	"github.com/ovalline/cricketstats/internal/domain/team"
	"github.com/ovalline/cricketstats/internal/domain/venue"
	"github.com/ovalline/cricketstats/internal/usecase"
)

type stubTeamRepository struct {
	rows []team.Summary
	err  error
}

func (r *stubTeamRepository) List(_ context.Context, _ team.Filter) ([]team.Summary, error) {
	return r.rows, r.err
}

type stubPlayerRepository struct {
	rows []player.Summary
	err  error
}

func (r *stubPlayerRepository) List(_ context.Context, _ player.Filter) ([]player.Summary, error) {
	return r.rows, r.err
}

type stubVenueRepository struct {
	rows []venue.Summary
	err  error
}

func (r *stubVenueRepository) List(_ context.Context, _ venue.Filter) ([]venue.Summary, error) {
	return r.rows, r.err
}

type stubOfficialRepository struct {
	rows []official.Assignment
	err  error
}

func (r *stubOfficialRepository) ListAssignments(_ context.Context, _ official.Filter) ([]official.Assignment, error) {
	return r.rows, r.err
}

type stubMatchRepository struct {
	summaries  []match.Summary
	summary    match.Summary
	found      bool
	deliveries []match.Delivery
	batting    match.BattingStats
	bowling    match.BowlingStats
	fielding   match.FieldingStats
	known      bool
	err        error

	detailsFilter match.DetailsFilter
}

func (r *stubMatchRepository) ListSummaries(_ context.Context, filter match.DetailsFilter) ([]match.Summary, error) {
	r.detailsFilter = filter
	return r.summaries, r.err
}

func (r *stubMatchRepository) GetSummary(_ context.Context, _ string) (match.Summary, bool, error) {
	return r.summary, r.found, r.err
}

func (r *stubMatchRepository) ListDeliveries(_ context.Context, _ match.DeliveryFilter) ([]match.Delivery, error) {
	return r.deliveries, r.err
}

func (r *stubMatchRepository) BattingStats(_ context.Context, _ match.PerformanceFilter) (match.BattingStats, error) {
	return r.batting, r.err
}

func (r *stubMatchRepository) BowlingStats(_ context.Context, _ match.PerformanceFilter) (match.BowlingStats, error) {
	return r.bowling, r.err
}

func (r *stubMatchRepository) FieldingStats(_ context.Context, _ match.PerformanceFilter) (match.FieldingStats, error) {
	return r.fielding, r.err
}

func (r *stubMatchRepository) PlayerExists(_ context.Context, _ string) (bool, error) {
	return r.known, r.err
}

type stubRepositories struct {
	teams     *stubTeamRepository
	players   *stubPlayerRepository
	venues    *stubVenueRepository
	officials *stubOfficialRepository
	matches   *stubMatchRepository
}

func newStubRepositories() *stubRepositories {
	return &stubRepositories{
		teams:     &stubTeamRepository{},
		players:   &stubPlayerRepository{},
		venues:    &stubVenueRepository{},
		officials: &stubOfficialRepository{},
		matches:   &stubMatchRepository{},
	}
}

func (s *stubRepositories) dispatcher() *Dispatcher {
	stats := usecase.NewStatsService(s.teams, s.players, s.venues, s.officials, s.matches, nil, nil)
	return NewDispatcher(stats)
}
