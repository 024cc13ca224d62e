package cricsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMatch = `{
  "info": {
    "city": "Bangalore",
    "dates": ["2008-04-18"],
    "event": {"name": "Indian Premier League", "match_number": 1},
    "officials": {
      "match_referees": ["J Srinath"],
      "tv_umpires": ["BR Doctrove"],
      "umpires": ["Asad Rauf", "RE Koertzen"]
    },
    "outcome": {"winner": "Kolkata Knight Riders", "by": {"runs": 140}},
    "player_of_match": ["BB McCullum"],
    "players": {
      "Kolkata Knight Riders": ["SC Ganguly", "BB McCullum"],
      "Royal Challengers Bangalore": ["R Dravid", "P Kumar"]
    },
    "season": "2007/08",
    "teams": ["Kolkata Knight Riders", "Royal Challengers Bangalore"],
    "toss": {"winner": "Royal Challengers Bangalore", "decision": "field"},
    "venue": "M Chinnaswamy Stadium"
  },
  "innings": [
    {
      "team": "Kolkata Knight Riders",
      "overs": [
        {
          "over": 0,
          "deliveries": [
            {
              "batter": "SC Ganguly",
              "bowler": "P Kumar",
              "non_striker": "BB McCullum",
              "runs": {"batter": 0, "extras": 1, "total": 1},
              "extras": {"legbyes": 1}
            },
            {
              "batter": "BB McCullum",
              "bowler": "P Kumar",
              "non_striker": "SC Ganguly",
              "runs": {"batter": 0, "extras": 0, "total": 0}
            },
            {
              "batter": "BB McCullum",
              "bowler": "P Kumar",
              "non_striker": "SC Ganguly",
              "runs": {"batter": 0, "extras": 0, "total": 0},
              "wickets": [
                {
                  "kind": "caught",
                  "player_out": "BB McCullum",
                  "fielders": [{"name": "R Dravid"}]
                }
              ]
            }
          ]
        },
        {
          "over": 1,
          "deliveries": [
            {
              "batter": "SC Ganguly",
              "bowler": "Z Khan",
              "non_striker": "RT Ponting",
              "runs": {"batter": 4, "extras": 0, "total": 4}
            }
          ]
        }
      ]
    }
  ]
}`

func TestDecode(t *testing.T) {
	t.Parallel()

	record, err := Decode("335982", []byte(sampleMatch))
	require.NoError(t, err)

	assert.Equal(t, "335982", record.MatchID)
	assert.Equal(t, "2007/08", record.Season)
	assert.Equal(t, "2008-04-18", record.Date)
	assert.Equal(t, "Bangalore", record.City)
	assert.Equal(t, "M Chinnaswamy Stadium", record.VenueName)
	assert.Equal(t, "Kolkata Knight Riders", record.Team1)
	assert.Equal(t, "Royal Challengers Bangalore", record.Team2)
	assert.Equal(t, "Royal Challengers Bangalore", record.TossWinner)
	assert.Equal(t, "field", record.TossDecision)
	assert.Equal(t, "Kolkata Knight Riders", record.Winner)
	assert.Equal(t, "normal", record.Result)
	assert.Equal(t, "140 runs", record.ResultMargin)
	assert.Equal(t, "BB McCullum", record.PlayerOfMatch)
}

func TestDecodeOfficials(t *testing.T) {
	t.Parallel()

	record, err := Decode("335982", []byte(sampleMatch))
	require.NoError(t, err)

	// Role keys sort alphabetically, so referees come first.
	require.Len(t, record.Officials, 4)
	assert.Equal(t, "J Srinath", record.Officials[0].Name)
	assert.Equal(t, "match_referee", record.Officials[0].Role)
	assert.Equal(t, "BR Doctrove", record.Officials[1].Name)
	assert.Equal(t, "tv_umpire", record.Officials[1].Role)
	assert.Equal(t, "umpire", record.Officials[2].Role)
	assert.Equal(t, "umpire", record.Officials[3].Role)
}

func TestDecodeRoster(t *testing.T) {
	t.Parallel()

	record, err := Decode("335982", []byte(sampleMatch))
	require.NoError(t, err)

	require.Len(t, record.Players, 4)
	assert.Equal(t, "SC Ganguly", record.Players[0].Name)
	assert.Equal(t, "Kolkata Knight Riders", record.Players[0].TeamName)
	assert.Equal(t, "R Dravid", record.Players[2].Name)
	assert.Equal(t, "Royal Challengers Bangalore", record.Players[2].TeamName)
}

func TestDecodeDeliveries(t *testing.T) {
	t.Parallel()

	record, err := Decode("335982", []byte(sampleMatch))
	require.NoError(t, err)

	require.Len(t, record.Innings, 1)
	innings := record.Innings[0]
	assert.Equal(t, 1, innings.Number)
	assert.Equal(t, "Kolkata Knight Riders", innings.BattingTeam)
	require.Len(t, innings.Deliveries, 4)

	first := innings.Deliveries[0]
	assert.Equal(t, 0, first.Over)
	assert.Equal(t, 1, first.Ball)
	assert.Equal(t, "legbyes", first.ExtrasType)
	assert.Equal(t, 1, first.RunsExtras)

	// Balls number sequentially within the over, restarting each over.
	assert.Equal(t, 2, innings.Deliveries[1].Ball)
	assert.Equal(t, 3, innings.Deliveries[2].Ball)
	assert.Equal(t, 1, innings.Deliveries[3].Ball)
	assert.Equal(t, 1, innings.Deliveries[3].Over)

	wicket := innings.Deliveries[2]
	assert.Equal(t, "caught", wicket.WicketType)
	assert.Equal(t, "BB McCullum", wicket.PlayerDismissed)
	assert.Equal(t, "R Dravid", wicket.Fielder)
}

func TestDecodeExtrasTypePriority(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		extras map[string]int
		want   string
	}{
		"wide beats byes":      {extras: map[string]int{"byes": 1, "wides": 1}, want: "wides"},
		"noball beats legbyes": {extras: map[string]int{"legbyes": 1, "noballs": 1}, want: "noballs"},
		"penalty alone":        {extras: map[string]int{"penalty": 5}, want: "penalty"},
		"no extras":            {extras: nil, want: ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, extrasType(tc.extras))
		})
	}
}

func TestDecodeNumericSeason(t *testing.T) {
	t.Parallel()

	doc := `{
  "info": {
    "dates": ["2021-04-09"],
    "season": 2021,
    "teams": ["Mumbai Indians", "Royal Challengers Bangalore"],
    "toss": {"winner": "Royal Challengers Bangalore", "decision": "field"},
    "venue": "MA Chidambaram Stadium"
  },
  "innings": []
}`

	record, err := Decode("1254058", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "2021", record.Season)
}

func TestDecodeNoResultOutcome(t *testing.T) {
	t.Parallel()

	doc := `{
  "info": {
    "dates": ["2015-04-29"],
    "season": "2015",
    "outcome": {"result": "no result"},
    "teams": ["Rajasthan Royals", "Kolkata Knight Riders"],
    "toss": {"winner": "Rajasthan Royals", "decision": "bat"},
    "venue": "Barabati Stadium"
  },
  "innings": []
}`

	record, err := Decode("829763", []byte(doc))
	require.NoError(t, err)
	assert.Empty(t, record.Winner)
	assert.Equal(t, "no result", record.Result)
	assert.Empty(t, record.ResultMargin)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		matchID string
		doc     string
	}{
		"blank match id": {matchID: "  ", doc: sampleMatch},
		"not json":       {matchID: "1", doc: "not a document"},
		"one team":       {matchID: "1", doc: `{"info":{"dates":["2008-04-18"],"teams":["KKR"]}}`},
		"no dates":       {matchID: "1", doc: `{"info":{"teams":["KKR","RCB"]}}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(tc.matchID, []byte(tc.doc))
			assert.Error(t, err)
		})
	}
}
