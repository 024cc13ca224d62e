package mcp

// argSpec describes one tool argument for schema generation and validation.
type argSpec struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Enum        []string
}

type toolSpec struct {
	Name        string
	Description string
	Args        []argSpec
}

var toolSpecs = []toolSpec{
	{
		Name:        "get_team_info",
		Description: "List teams with their career win/loss record, optionally filtered by name.",
		Args: []argSpec{
			{Name: "team_name", Type: "string", Description: "Full or partial team name"},
		},
	},
	{
		Name:        "get_player_info",
		Description: "List players with career aggregates, optionally filtered by player or team name.",
		Args: []argSpec{
			{Name: "player_name", Type: "string", Description: "Full or partial player name"},
			{Name: "team_name", Type: "string", Description: "Full or partial team name"},
		},
	},
	{
		Name:        "get_match_details",
		Description: "List matches with venue, sides, toss, and result, filtered by any combination of id, season, team, and venue.",
		Args: []argSpec{
			{Name: "match_id", Type: "string", Description: "Exact match identifier"},
			{Name: "season", Type: "string", Description: "Exact season label, e.g. 2019 or 2007/08; a bare year is accepted"},
			{Name: "team_name", Type: "string", Description: "Full or partial name of either side"},
			{Name: "venue", Type: "string", Description: "Full or partial venue name"},
		},
	},
	{
		Name:        "get_ball_by_ball",
		Description: "Return the deliveries of one match in play order, optionally narrowed to an innings and an inclusive over range.",
		Args: []argSpec{
			{Name: "match_id", Type: "string", Description: "Exact match identifier", Required: true},
			{Name: "innings", Type: "integer", Description: "Innings number"},
			{Name: "over_start", Type: "integer", Description: "First over of the range, inclusive"},
			{Name: "over_end", Type: "integer", Description: "Last over of the range, inclusive"},
		},
	},
	{
		Name:        "get_player_performance",
		Description: "Aggregate one player's batting, bowling, or fielding figures, across their career or within one match.",
		Args: []argSpec{
			{Name: "player_name", Type: "string", Description: "Exact player name, case-insensitive", Required: true},
			{Name: "match_id", Type: "string", Description: "Limit aggregation to one match"},
			{Name: "stat_type", Type: "string", Description: "Which discipline to aggregate", Enum: []string{"batting", "bowling", "fielding", "all"}},
		},
	},
	{
		Name:        "get_match_officials",
		Description: "List officials and their roles, filtered by match or official name.",
		Args: []argSpec{
			{Name: "match_id", Type: "string", Description: "Exact match identifier"},
			{Name: "official_name", Type: "string", Description: "Full or partial official name"},
		},
	},
	{
		Name:        "get_venue_info",
		Description: "List venues with hosted-match counts, optionally filtered by name or city.",
		Args: []argSpec{
			{Name: "venue_name", Type: "string", Description: "Full or partial venue name"},
			{Name: "city", Type: "string", Description: "Full or partial city name"},
		},
	},
}

func toolDescriptors() []toolDescriptor {
	out := make([]toolDescriptor, 0, len(toolSpecs))
	for _, spec := range toolSpecs {
		out = append(out, toolDescriptor{
			Name:        spec.Name,
			Description: spec.Description,
			InputSchema: inputSchema(spec),
		})
	}
	return out
}

func inputSchema(spec toolSpec) map[string]any {
	properties := make(map[string]any, len(spec.Args))
	required := []string{}
	for _, arg := range spec.Args {
		prop := map[string]any{
			"type":        arg.Type,
			"description": arg.Description,
		}
		if len(arg.Enum) > 0 {
			prop["enum"] = arg.Enum
		}
		properties[arg.Name] = prop
		if arg.Required {
			required = append(required, arg.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func findTool(name string) (toolSpec, bool) {
	for _, spec := range toolSpecs {
		if spec.Name == name {
			return spec, true
		}
	}
	return toolSpec{}, false
}
