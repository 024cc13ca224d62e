package cricsheet

import (
	"fmt"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/ovalline/cricketstats/internal/domain/match"
)

// Officials in cricsheet group by plural role keys.
var officialRoles = map[string]string{
	"umpires":         "umpire",
	"tv_umpires":      "tv_umpire",
	"reserve_umpires": "reserve_umpire",
	"match_referees":  "match_referee",
}

// Decode turns one cricsheet match document into an ingestion record. The
// match id comes from the caller, usually the file name stem.
func Decode(matchID string, data []byte) (*match.Record, error) {
	if strings.TrimSpace(matchID) == "" {
		return nil, crerr.New("match id is required")
	}

	var doc matchFile
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, crerr.Wrap(err, "decode match document")
	}
	if len(doc.Info.Teams) != 2 {
		return nil, crerr.Newf("expected 2 teams, got %d", len(doc.Info.Teams))
	}
	if len(doc.Info.Dates) == 0 {
		return nil, crerr.New("match has no dates")
	}

	record := &match.Record{
		MatchID:      matchID,
		Season:       seasonLabel(doc.Info.Season),
		Date:         doc.Info.Dates[0],
		City:         doc.Info.City,
		VenueName:    doc.Info.Venue,
		Team1:        doc.Info.Teams[0],
		Team2:        doc.Info.Teams[1],
		TossWinner:   doc.Info.Toss.Winner,
		TossDecision: doc.Info.Toss.Decision,
	}

	if len(doc.Info.PlayerOfMatch) > 0 {
		record.PlayerOfMatch = doc.Info.PlayerOfMatch[0]
	}
	record.Winner, record.Result, record.ResultMargin = outcomeFields(doc.Info.Outcome)
	record.Officials = officialRecords(doc.Info.Officials)
	record.Players = rosterRecords(doc.Info.Players)

	for i, innings := range doc.Innings {
		record.Innings = append(record.Innings, decodeInnings(i+1, innings))
	}

	return record, nil
}

func decodeInnings(number int, innings inningsSection) match.InningsRecord {
	out := match.InningsRecord{
		Number:      number,
		BattingTeam: innings.Team,
	}

	for _, over := range innings.Overs {
		for i, d := range over.Deliveries {
			delivery := match.DeliveryRecord{
				Over:       over.Over,
				Ball:       i + 1,
				Batter:     d.Batter,
				Bowler:     d.Bowler,
				NonStriker: d.NonStriker,
				RunsBatter: d.Runs.Batter,
				RunsExtras: d.Runs.Extras,
				RunsTotal:  d.Runs.Total,
				ExtrasType: extrasType(d.Extras),
			}
			if len(d.Wickets) > 0 {
				w := d.Wickets[0]
				delivery.WicketType = w.Kind
				delivery.PlayerDismissed = w.PlayerOut
				if len(w.Fielders) > 0 {
					delivery.Fielder = w.Fielders[0].Name
				}
			}
			out.Deliveries = append(out.Deliveries, delivery)
		}
	}

	return out
}

func outcomeFields(outcome outcomeSection) (winner, result, margin string) {
	if outcome.Winner == "" {
		return "", outcome.Result, ""
	}

	result = "normal"
	for _, unit := range []string{"runs", "wickets", "innings"} {
		if count, ok := outcome.By[unit]; ok {
			margin = fmt.Sprintf("%d %s", count, unit)
			break
		}
	}
	return outcome.Winner, result, margin
}

func officialRecords(officials map[string][]string) []match.OfficialRecord {
	keys := make([]string, 0, len(officials))
	for key := range officials {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []match.OfficialRecord
	for _, key := range keys {
		role, ok := officialRoles[key]
		if !ok {
			continue
		}
		for _, name := range officials[key] {
			out = append(out, match.OfficialRecord{Name: name, Role: role})
		}
	}
	return out
}

func rosterRecords(players map[string][]string) []match.PlayerRecord {
	teams := make([]string, 0, len(players))
	for teamName := range players {
		teams = append(teams, teamName)
	}
	sort.Strings(teams)

	var out []match.PlayerRecord
	for _, teamName := range teams {
		for _, name := range players[teamName] {
			out = append(out, match.PlayerRecord{Name: name, TeamName: teamName})
		}
	}
	return out
}

// extrasType picks the dominant extra on the ball; penalty runs ride along
// with whatever else was signalled.
func extrasType(extras map[string]int) string {
	for _, kind := range []string{"wides", "noballs", "byes", "legbyes", "penalty"} {
		if _, ok := extras[kind]; ok {
			return kind
		}
	}
	return ""
}

// seasonLabel normalizes the season field, which cricsheet emits either as a
// string ("2007/08") or a bare year.
func seasonLabel(season any) string {
	switch v := season.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%d", int(v))
	default:
		return ""
	}
}
