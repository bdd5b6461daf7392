package mocksleeper

import (
	"github.com/itsmikesebringyo/ff-app/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetRosters(leagueID string) ([]model.Roster, error) {
	args := c.Called(leagueID)

	var res []model.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Roster)
	}

	return res, args.Error(1)
}

func (c *Client) GetUsers(leagueID string) ([]model.LeagueUser, error) {
	args := c.Called(leagueID)

	var res []model.LeagueUser
	if args.Get(0) != nil {
		res = args.Get(0).([]model.LeagueUser)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(leagueID string, week int) ([]model.Matchup, error) {
	args := c.Called(leagueID, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}

func (c *Client) LoadPlayers() (map[string]model.PlayerInfo, error) {
	args := c.Called()

	var res map[string]model.PlayerInfo
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]model.PlayerInfo)
	}

	return res, args.Error(1)
}

func (c *Client) GetProjections(seasonType, season string, week int) (map[string]float64, error) {
	args := c.Called(seasonType, season, week)

	var res map[string]float64
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]float64)
	}

	return res, args.Error(1)
}

func (c *Client) GetNFLState() (*model.NFLState, error) {
	args := c.Called()

	var res *model.NFLState
	if args.Get(0) != nil {
		res = args.Get(0).(*model.NFLState)
	}

	return res, args.Error(1)
}
