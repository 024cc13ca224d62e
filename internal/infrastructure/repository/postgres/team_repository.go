package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ovalline/cricketstats/internal/domain/team"
	qb "github.com/ovalline/cricketstats/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Summary, error) {
	builder := qb.Select(
		"t.id",
		"t.name",
		"t.short_name",
		"t.city",
		"t.home_venue",
		"t.championships_won",
		"t.wins",
		"t.losses",
		"(SELECT COUNT(*) FROM matches m WHERE m.team1_id = t.id OR m.team2_id = t.id) AS total_matches",
	).From("teams t").
		OrderBy("t.name")

	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		builder = builder.Where(qb.Expr("(t.name ILIKE ? OR t.short_name ILIKE ?)", pattern, pattern))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Summary{
			ID:               row.ID,
			Name:             row.Name,
			ShortName:        nullStringToString(row.ShortName),
			City:             nullStringToString(row.City),
			HomeVenue:        nullStringToString(row.HomeVenue),
			ChampionshipsWon: row.ChampionshipsWon,
			Wins:             row.Wins,
			Losses:           row.Losses,
			TotalMatches:     row.TotalMatches,
		})
	}

	return out, nil
}
