package mcp

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/ovalline/cricketstats/internal/domain/match"
	"github.com/ovalline/cricketstats/internal/domain/official"
	"github.com/ovalline/cricketstats/internal/domain/player"
	"github.com/ovalline/cricketstats/internal/domain/team"
	"github.com/ovalline/cricketstats/internal/domain/venue"
	"github.com/ovalline/cricketstats/internal/usecase"
)

const dateLayout = "2006-01-02"

// Dispatcher routes a validated tool call to the stats service and shapes the
// answer for the wire.
type Dispatcher struct {
	stats *usecase.StatsService
}

func NewDispatcher(stats *usecase.StatsService) *Dispatcher {
	return &Dispatcher{stats: stats}
}

// Dispatch validates arguments against the tool spec and runs the query.
// Checks run in a fixed order: unknown tool, missing required arguments,
// unexpected arguments, then per-argument types and ranges.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (any, error) {
	spec, ok := findTool(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", usecase.ErrUnknownOperation, name)
	}
	if err := checkArgs(spec, args); err != nil {
		return nil, err
	}

	switch name {
	case "get_team_info":
		return d.teamInfo(ctx, args)
	case "get_player_info":
		return d.playerInfo(ctx, args)
	case "get_match_details":
		return d.matchDetails(ctx, args)
	case "get_ball_by_ball":
		return d.ballByBall(ctx, args)
	case "get_player_performance":
		return d.playerPerformance(ctx, args)
	case "get_match_officials":
		return d.matchOfficials(ctx, args)
	case "get_venue_info":
		return d.venueInfo(ctx, args)
	}

	return nil, fmt.Errorf("%w: %s", usecase.ErrUnknownOperation, name)
}

func (d *Dispatcher) teamInfo(ctx context.Context, args map[string]any) (any, error) {
	name, err := stringArg(args, "team_name")
	if err != nil {
		return nil, err
	}

	teams, err := d.stats.TeamInfo(ctx, team.Filter{Name: name})
	if err != nil {
		return nil, err
	}

	out := make([]teamPayload, 0, len(teams))
	for _, t := range teams {
		out = append(out, teamPayload{
			Name:             t.Name,
			ShortName:        t.ShortName,
			City:             t.City,
			HomeVenue:        t.HomeVenue,
			ChampionshipsWon: t.ChampionshipsWon,
			TotalMatches:     t.TotalMatches,
			Wins:             t.Wins,
			Losses:           t.Losses,
		})
	}
	return teamListPayload{Teams: out, TotalTeams: len(out)}, nil
}

func (d *Dispatcher) playerInfo(ctx context.Context, args map[string]any) (any, error) {
	name, err := stringArg(args, "player_name")
	if err != nil {
		return nil, err
	}
	teamName, err := stringArg(args, "team_name")
	if err != nil {
		return nil, err
	}

	players, err := d.stats.PlayerInfo(ctx, player.Filter{Name: name, TeamName: teamName})
	if err != nil {
		return nil, err
	}

	out := make([]playerPayload, 0, len(players))
	for _, p := range players {
		out = append(out, playerPayload{
			Name:          p.Name,
			Team:          p.TeamName,
			Role:          p.Role,
			BattingStyle:  p.BattingStyle,
			BowlingStyle:  p.BowlingStyle,
			Nationality:   p.Nationality,
			MatchesPlayed: p.MatchesPlayed,
			RunsScored:    p.RunsScored,
			WicketsTaken:  p.WicketsTaken,
		})
	}
	return playerListPayload{Players: out, TotalPlayers: len(out)}, nil
}

func (d *Dispatcher) matchDetails(ctx context.Context, args map[string]any) (any, error) {
	filter := match.DetailsFilter{}
	var err error
	if filter.MatchID, err = stringArg(args, "match_id"); err != nil {
		return nil, err
	}
	if filter.Season, err = seasonArg(args, "season"); err != nil {
		return nil, err
	}
	if filter.TeamName, err = stringArg(args, "team_name"); err != nil {
		return nil, err
	}
	if filter.Venue, err = stringArg(args, "venue"); err != nil {
		return nil, err
	}

	matches, err := d.stats.MatchDetails(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]matchPayload, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchPayloadFrom(m))
	}
	return matchListPayload{Matches: out, TotalMatches: len(out)}, nil
}

func (d *Dispatcher) ballByBall(ctx context.Context, args map[string]any) (any, error) {
	matchID, err := stringArg(args, "match_id")
	if err != nil {
		return nil, err
	}

	filter := match.DeliveryFilter{MatchID: matchID}
	if filter.Innings, err = intArg(args, "innings"); err != nil {
		return nil, err
	}
	if filter.OverStart, err = intArg(args, "over_start"); err != nil {
		return nil, err
	}
	if filter.OverEnd, err = intArg(args, "over_end"); err != nil {
		return nil, err
	}

	result, err := d.stats.BallByBall(ctx, filter)
	if err != nil {
		return nil, err
	}

	payload := ballByBallPayload{
		Deliveries:      make([]deliveryPayload, 0, len(result.Deliveries)),
		TotalDeliveries: result.TotalDeliveries,
		OversCovered:    result.OversCovered,
	}
	if result.MatchFound {
		info := matchPayloadFrom(result.MatchInfo)
		payload.MatchInfo = &info
	}
	for _, del := range result.Deliveries {
		payload.Deliveries = append(payload.Deliveries, deliveryPayload{
			Innings:         del.InningsNumber,
			BattingTeam:     del.BattingTeam,
			Over:            del.OverNumber,
			Ball:            del.BallNumber,
			Batter:          del.Batter,
			Bowler:          del.Bowler,
			NonStriker:      del.NonStriker,
			RunsBatter:      del.RunsBatter,
			RunsExtras:      del.RunsExtras,
			RunsTotal:       del.RunsTotal,
			ExtrasType:      del.ExtrasType,
			WicketType:      del.WicketType,
			PlayerDismissed: del.PlayerDismissed,
			Fielder:         del.Fielder,
		})
	}
	return payload, nil
}

func (d *Dispatcher) playerPerformance(ctx context.Context, args map[string]any) (any, error) {
	playerName, err := stringArg(args, "player_name")
	if err != nil {
		return nil, err
	}
	matchID, err := stringArg(args, "match_id")
	if err != nil {
		return nil, err
	}
	statType, err := stringArg(args, "stat_type")
	if err != nil {
		return nil, err
	}
	if statType == "" {
		statType = usecase.StatTypeAll
	}

	performance, err := d.stats.PlayerPerformance(ctx, match.PerformanceFilter{
		PlayerName: playerName,
		MatchID:    matchID,
	}, statType)
	if err != nil {
		return nil, err
	}

	return performancePayload{
		PlayerName: performance.PlayerName,
		MatchID:    matchID,
		StatType:   statType,
		Performance: performanceSections{
			Batting:  performance.Batting,
			Bowling:  performance.Bowling,
			Fielding: performance.Fielding,
		},
	}, nil
}

func (d *Dispatcher) matchOfficials(ctx context.Context, args map[string]any) (any, error) {
	filter := official.Filter{}
	var err error
	if filter.MatchID, err = stringArg(args, "match_id"); err != nil {
		return nil, err
	}
	if filter.OfficialName, err = stringArg(args, "official_name"); err != nil {
		return nil, err
	}

	assignments, err := d.stats.MatchOfficials(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]officialPayload, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, officialPayload{
			MatchID: a.MatchID,
			Name:    a.Name,
			Role:    a.Role,
		})
	}
	return officialListPayload{Officials: out, TotalOfficials: len(out)}, nil
}

func (d *Dispatcher) venueInfo(ctx context.Context, args map[string]any) (any, error) {
	filter := venue.Filter{}
	var err error
	if filter.Name, err = stringArg(args, "venue_name"); err != nil {
		return nil, err
	}
	if filter.City, err = stringArg(args, "city"); err != nil {
		return nil, err
	}

	venues, err := d.stats.VenueInfo(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]venuePayload, 0, len(venues))
	for _, v := range venues {
		out = append(out, venuePayload{
			Name:         v.Name,
			City:         v.City,
			Country:      v.Country,
			Capacity:     v.Capacity,
			TotalMatches: v.TotalMatches,
		})
	}
	return venueListPayload{Venues: out, TotalVenues: len(out)}, nil
}

func checkArgs(spec toolSpec, args map[string]any) error {
	for _, arg := range spec.Args {
		if !arg.Required {
			continue
		}
		value, ok := args[arg.Name]
		if !ok || value == nil || value == "" {
			return fmt.Errorf("%w: %s", usecase.ErrMissingArgument, arg.Name)
		}
	}

	for name := range args {
		known := false
		for _, arg := range spec.Args {
			if arg.Name == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: unexpected argument %q", usecase.ErrInvalidFilter, name)
		}
	}

	for _, arg := range spec.Args {
		if len(arg.Enum) == 0 {
			continue
		}
		value, ok := args[arg.Name].(string)
		if !ok || value == "" {
			continue
		}
		allowed := false
		for _, candidate := range arg.Enum {
			if value == candidate {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: %s %q", usecase.ErrInvalidFilter, arg.Name, value)
		}
	}

	return nil
}

func stringArg(args map[string]any, name string) (string, error) {
	value, ok := args[name]
	if !ok || value == nil {
		return "", nil
	}
	out, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", usecase.ErrInvalidFilter, name)
	}
	return out, nil
}

// seasonArg accepts a season as a label ("2007/08") or as a bare year
// number, which is normalized to its label form.
func seasonArg(args map[string]any, name string) (string, error) {
	value, ok := args[name]
	if !ok || value == nil {
		return "", nil
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return "", fmt.Errorf("%w: %s must be a season label or year", usecase.ErrInvalidFilter, name)
		}
		return strconv.Itoa(int(v)), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return "", fmt.Errorf("%w: %s must be a season label or year", usecase.ErrInvalidFilter, name)
	}
}

// intArg accepts JSON numbers only when they are integral.
func intArg(args map[string]any, name string) (*int, error) {
	value, ok := args[name]
	if !ok || value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidFilter, name)
		}
		out := int(v)
		return &out, nil
	case int:
		out := v
		return &out, nil
	case int64:
		out := int(v)
		return &out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidFilter, name)
	}
}
