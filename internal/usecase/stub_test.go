package usecase

import (
	"context"

	"github.com/ovalline/cricketstats/internal/domain/match"
	"github.com/ovalline/cricketstats/internal/domain/official"
	"github.com/ovalline/cricketstats/internal/domain/player"
	"github.com/ovalline/cricketstats/internal/domain/team"
	"github.com/ovalline/cricketstats/internal/domain/venue"
)

type stubMatchWriter struct {
	written []*match.Record
	err     error
}

func (w *stubMatchWriter) Write(_ context.Context, record *match.Record) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, record)
	return nil
}

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

	deliveryFilter match.DeliveryFilter
}

func (r *stubMatchRepository) ListSummaries(_ context.Context, _ match.DetailsFilter) ([]match.Summary, error) {
	return r.summaries, r.err
}

func (r *stubMatchRepository) GetSummary(_ context.Context, _ string) (match.Summary, bool, error) {
	return r.summary, r.found, r.err
}

func (r *stubMatchRepository) ListDeliveries(_ context.Context, filter match.DeliveryFilter) ([]match.Delivery, error) {
	r.deliveryFilter = filter
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

func validRecord() *match.Record {
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
					{Over: 0, Ball: 1, Batter: "SC Ganguly", Bowler: "P Kumar", NonStriker: "BB McCullum", RunsExtras: 1, RunsTotal: 1, ExtrasType: "legbyes"},
					{Over: 0, Ball: 2, Batter: "BB McCullum", Bowler: "P Kumar", NonStriker: "SC Ganguly"},
				},
			},
		},
	}
}
