package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ovalline/cricketstats/internal/domain/venue"
	qb "github.com/ovalline/cricketstats/internal/platform/querybuilder"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) List(ctx context.Context, filter venue.Filter) ([]venue.Summary, error) {
	builder := qb.Select(
		"v.id",
		"v.name",
		"v.city",
		"v.country",
		"v.capacity",
		"v.match_count",
	).From("venues v").
		OrderBy("v.match_count DESC", "v.name")

	if filter.Name != "" {
		builder = builder.Where(qb.ILike("v.name", filter.Name))
	}
	if filter.City != "" {
		builder = builder.Where(qb.ILike("v.city", filter.City))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, venue.Summary{
			ID:           row.ID,
			Name:         row.Name,
			City:         nullStringToString(row.City),
			Country:      nullStringToString(row.Country),
			Capacity:     int(row.Capacity.Int64),
			TotalMatches: row.MatchCount,
		})
	}

	return out, nil
}
