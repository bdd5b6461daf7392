package sleeper

import (
	"github.com/itsmikesebringyo/ff-app/model"
)

// Wire formats for the Sleeper API. These stay inside this package;
// everything is converted to model types before leaving.

type sleeperRoster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

func (r *sleeperRoster) toRoster() *model.Roster {
	return &model.Roster{
		RosterID:   r.RosterID,
		OwnerID:    r.OwnerID,
		PlayerIDs:  r.Players,
		StarterIDs: r.Starters,
	}
}

type sleeperUser struct {
	UserID      string        `json:"user_id"`
	Username    string        `json:"username"`
	DisplayName string        `json:"display_name"`
	Metadata    *userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}

func (u *sleeperUser) toUser() *model.LeagueUser {
	user := &model.LeagueUser{
		UserID:      u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
	if u.Metadata != nil {
		user.TeamName = u.Metadata.TeamName
	}
	return user
}

type sleeperMatchup struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     int                `json:"matchup_id"`
	Points        float64            `json:"points"`
	PlayersPoints map[string]float64 `json:"players_points"`
	Starters      []string           `json:"starters"`
}

func (m *sleeperMatchup) toMatchup() *model.Matchup {
	return &model.Matchup{
		RosterID:     m.RosterID,
		MatchupID:    m.MatchupID,
		Points:       m.Points,
		PlayerPoints: m.PlayersPoints,
		StarterIDs:   m.Starters,
	}
}

type sleeperPlayer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	Active    bool   `json:"active"`
}

func (p *sleeperPlayer) toPlayerInfo(id string) *model.PlayerInfo {
	return &model.PlayerInfo{
		ID:        id,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      p.Team,
		Active:    p.Active,
	}
}

// A projection entry is a full stat line; pts_ppr is the only field we
// keep, and its absence means the entry is dropped.
type sleeperProjection struct {
	PtsPPR *float64 `json:"pts_ppr"`
}

type sleeperNFLState struct {
	Week        int    `json:"week"`
	DisplayWeek int    `json:"display_week"`
	Season      string `json:"season"`
	SeasonType  string `json:"season_type"`
}

func (s *sleeperNFLState) toNFLState() *model.NFLState {
	return &model.NFLState{
		Week:        s.Week,
		DisplayWeek: s.DisplayWeek,
		Season:      s.Season,
		SeasonType:  s.SeasonType,
	}
}
