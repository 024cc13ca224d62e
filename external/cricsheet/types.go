package cricsheet

// Wire types for cricsheet.org match JSON. Only the fields ingestion needs
// are declared; the rest of the document is ignored on decode.

type matchFile struct {
	Info    infoSection      `json:"info"`
	Innings []inningsSection `json:"innings"`
}

type infoSection struct {
	City          string              `json:"city"`
	Dates         []string            `json:"dates"`
	Event         eventSection        `json:"event"`
	Officials     map[string][]string `json:"officials"`
	Outcome       outcomeSection      `json:"outcome"`
	PlayerOfMatch []string            `json:"player_of_match"`
	Players       map[string][]string `json:"players"`
	Season        any                 `json:"season"`
	Teams         []string            `json:"teams"`
	Toss          tossSection         `json:"toss"`
	Venue         string              `json:"venue"`
}

type eventSection struct {
	Name        string `json:"name"`
	MatchNumber int    `json:"match_number"`
}

type outcomeSection struct {
	Winner string         `json:"winner"`
	Result string         `json:"result"`
	By     map[string]int `json:"by"`
}

type tossSection struct {
	Winner   string `json:"winner"`
	Decision string `json:"decision"`
}

type inningsSection struct {
	Team  string        `json:"team"`
	Overs []overSection `json:"overs"`
}

type overSection struct {
	Over       int               `json:"over"`
	Deliveries []deliverySection `json:"deliveries"`
}

type deliverySection struct {
	Batter     string         `json:"batter"`
	Bowler     string         `json:"bowler"`
	NonStriker string         `json:"non_striker"`
	Runs       runsSection    `json:"runs"`
	Extras     map[string]int `json:"extras"`
	Wickets    []wicketEvent  `json:"wickets"`
}

type runsSection struct {
	Batter int `json:"batter"`
	Extras int `json:"extras"`
	Total  int `json:"total"`
}

type wicketEvent struct {
	Kind      string          `json:"kind"`
	PlayerOut string          `json:"player_out"`
	Fielders  []fielderListed `json:"fielders"`
}

type fielderListed struct {
	Name string `json:"name"`
}
