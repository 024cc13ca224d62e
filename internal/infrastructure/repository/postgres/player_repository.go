package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ovalline/cricketstats/internal/domain/player"
	qb "github.com/ovalline/cricketstats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Summary, error) {
	builder := qb.Select(
		"p.id",
		"p.name",
		"p.team_id",
		"p.role",
		"p.batting_style",
		"p.bowling_style",
		"p.nationality",
		"p.matches_played",
		"p.runs_scored",
		"p.wickets_taken",
		"t.name AS team_name",
	).From("players p").
		LeftJoin("teams t", "t.id = p.team_id").
		OrderBy("p.runs_scored DESC", "p.name")

	if filter.Name != "" {
		builder = builder.Where(qb.ILike("p.name", filter.Name))
	}
	if filter.TeamName != "" {
		builder = builder.Where(qb.ILike("t.name", filter.TeamName))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Summary{
			ID:            row.ID,
			Name:          row.Name,
			TeamName:      nullStringToString(row.TeamName),
			Role:          nullStringToString(row.Role),
			BattingStyle:  nullStringToString(row.BattingStyle),
			BowlingStyle:  nullStringToString(row.BowlingStyle),
			Nationality:   nullStringToString(row.Nationality),
			MatchesPlayed: row.MatchesPlayed,
			RunsScored:    row.RunsScored,
			WicketsTaken:  row.WicketsTaken,
		})
	}

	return out, nil
}
