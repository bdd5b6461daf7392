package model

import "time"

// PlayerLine is one player's row in a team's weekly breakdown. Slot is
// assigned only for starters, by positional index convention.
type PlayerLine struct {
	PlayerID        string   `json:"player_id"`
	Name            string   `json:"player"`
	Position        Position `json:"position"`
	Slot            string   `json:"slot,omitempty"`
	Points          float64  `json:"points"`
	ProjectedPoints float64  `json:"projected_points"`
	IsStarter       bool     `json:"is_starter"`
}

// TeamStanding is one team's entry in a single week's "vs everyone"
// standings. Wins and losses are synthetic: the record against the whole
// field for the week, not a head-to-head result.
type TeamStanding struct {
	RosterID       int          `json:"team_id"`
	TeamName       string       `json:"team_name"`
	Rank           int          `json:"rank"`
	Points         float64      `json:"points"`
	ProjectedTotal float64      `json:"projected_total"`
	Wins           int          `json:"wins"`
	Losses         int          `json:"losses"`
	Starters       []PlayerLine `json:"roster,omitempty"`
	Bench          []PlayerLine `json:"bench,omitempty"`
}

// OverallStanding is a team's cumulative season record, the running sum
// of its weekly synthetic records.
type OverallStanding struct {
	RosterID    int     `json:"team_id"`
	TeamName    string  `json:"team_name"`
	Rank        int     `json:"current_rank"`
	TotalWins   int     `json:"total_wins"`
	TotalLosses int     `json:"total_losses"`
	TotalPoints float64 `json:"total_points"`
	WinPct      float64 `json:"win_percentage"`
	TopFinishes int     `json:"top_finishes"`
	Earnings    int     `json:"earnings"`
	PlayoffPct  float64 `json:"playoff_percentage"`
}

// WeekContext identifies one week's worth of league data. It is the
// cache key for all week-scoped fetches; Week must be a concrete value
// before any fetch is issued.
type WeekContext struct {
	Season     string
	Week       int
	SeasonType string
}

// PollingState is the current refresh posture, recomputed from the game
// clock on every evaluation. IntervalMs is 0 while idle.
type PollingState struct {
	IsLive     bool `json:"is_live"`
	IntervalMs int  `json:"interval_ms"`
}

// PollingStatus is the persisted on/off switch for the live polling
// loop, toggled by an admin.
type PollingStatus struct {
	Enabled     bool      `json:"enabled"`
	Status      string    `json:"status,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}
