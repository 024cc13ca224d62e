package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ovalline/cricketstats/internal/domain/official"
	qb "github.com/ovalline/cricketstats/internal/platform/querybuilder"
)

type OfficialRepository struct {
	db *sqlx.DB
}

func NewOfficialRepository(db *sqlx.DB) *OfficialRepository {
	return &OfficialRepository{db: db}
}

func (r *OfficialRepository) ListAssignments(ctx context.Context, filter official.Filter) ([]official.Assignment, error) {
	builder := qb.Select(
		"mo.match_id",
		"o.name",
		"mo.role",
	).From("match_officials mo").
		Join("officials o", "o.id = mo.official_id").
		Join("matches m", "m.id = mo.match_id").
		OrderBy("m.match_date", "mo.role", "o.name")

	if filter.MatchID != "" {
		builder = builder.Where(qb.Eq("mo.match_id", filter.MatchID))
	}
	if filter.OfficialName != "" {
		builder = builder.Where(qb.ILike("o.name", filter.OfficialName))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select officials query: %w", err)
	}

	var rows []officialAssignmentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select officials: %w", err)
	}

	out := make([]official.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, official.Assignment{
			MatchID: row.MatchID,
			Name:    row.Name,
			Role:    row.Role,
		})
	}

	return out, nil
}
