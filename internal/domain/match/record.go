package match

import "time"

// Record is a full match as handed to ingestion: match metadata plus every
// innings and ball. Validation tags gate malformed input before any write.
type Record struct {
	MatchID       string           `validate:"required"`
	Season        string           `validate:"required"`
	Date          string           `validate:"required,datetime=2006-01-02"`
	City          string           ``
	VenueName     string           `validate:"required"`
	Team1         string           `validate:"required"`
	Team2         string           `validate:"required,nefield=Team1"`
	TossWinner    string           ``
	TossDecision  string           `validate:"omitempty,oneof=bat field"`
	Winner        string           ``
	Result        string           ``
	ResultMargin  string           ``
	PlayerOfMatch string           ``
	Officials     []OfficialRecord `validate:"dive"`
	Players       []PlayerRecord   `validate:"dive"`
	Innings       []InningsRecord  `validate:"max=4,dive"`
}

// MatchDate parses the record's date. Validation guarantees the layout.
func (r *Record) MatchDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

// OfficialRecord names one official and the role they served.
type OfficialRecord struct {
	Name string `validate:"required"`
	Role string `validate:"required,oneof=umpire tv_umpire reserve_umpire match_referee"`
}

// PlayerRecord carries optional roster metadata for a participant. Players
// that only appear inside deliveries are created with names alone.
type PlayerRecord struct {
	Name         string `validate:"required"`
	TeamName     string ``
	Role         string ``
	BattingStyle string ``
	BowlingStyle string ``
	Nationality  string ``
}

// InningsRecord is one innings with its deliveries in play order.
type InningsRecord struct {
	Number      int              `validate:"required,min=1,max=4"`
	BattingTeam string           `validate:"required"`
	Deliveries  []DeliveryRecord `validate:"dive"`
}

// DeliveryRecord is one ball as ingested.
type DeliveryRecord struct {
	Over            int    `validate:"min=0"`
	Ball            int    `validate:"required,min=1"`
	Batter          string `validate:"required"`
	Bowler          string `validate:"required"`
	NonStriker      string `validate:"required"`
	RunsBatter      int    `validate:"min=0"`
	RunsExtras      int    `validate:"min=0"`
	RunsTotal       int    `validate:"min=0"`
	ExtrasType      string ``
	WicketType      string ``
	PlayerDismissed string ``
	Fielder         string ``
}
