package model

// Roster is a fantasy team's set of rostered players for the season, as
// reported by the league platform.
type Roster struct {
	RosterID int
	OwnerID  string
	// All rostered player ids.
	PlayerIDs []string
	// Starter ids in declared lineup order. The order is authoritative:
	// index 0 is the QB slot, 1-2 RB, and so on. See StarterSlots.
	StarterIDs []string
}

// LeagueUser is a league member. TeamName is the optional custom team
// name from the user's league metadata.
type LeagueUser struct {
	UserID      string
	Username    string
	DisplayName string
	TeamName    string
}

// TeamName resolution: custom team name, then display name, then
// username, then a generic fallback built from the roster id elsewhere.
func (u *LeagueUser) BestName() string {
	if u.TeamName != "" {
		return u.TeamName
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Matchup is one roster's weekly scoring record. Points is the
// platform's authoritative total for the week and is not required to
// equal the sum of PlayerPoints.
type Matchup struct {
	RosterID     int
	MatchupID    int
	Points       float64
	PlayerPoints map[string]float64
	StarterIDs   []string
}

// NFLState is the league platform's view of where we are in the NFL
// season.
type NFLState struct {
	Week        int
	DisplayWeek int
	Season      string
	SeasonType  string
}

const SeasonTypeRegular = "regular"

// RegularSeason reports whether the state describes the regular season.
// A nil state reports false so callers can degrade to heuristics.
func (s *NFLState) RegularSeason() bool {
	return s != nil && s.SeasonType == SeasonTypeRegular
}
