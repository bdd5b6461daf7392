package mockcontroller

import (
	"context"
	"sync"

	"github.com/itsmikesebringyo/ff-app/controller"
	"github.com/itsmikesebringyo/ff-app/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetWeeklyStandings(ctx context.Context, week int) ([]model.TeamStanding, error) {
	args := c.Called(ctx, week)

	var res []model.TeamStanding
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TeamStanding)
	}
	return res, args.Error(1)
}

func (c *C) GetOverallStandings(ctx context.Context) ([]model.OverallStanding, error) {
	args := c.Called(ctx)

	var res []model.OverallStanding
	if args.Get(0) != nil {
		res = args.Get(0).([]model.OverallStanding)
	}
	return res, args.Error(1)
}

func (c *C) GetNFLState(ctx context.Context) (*model.NFLState, error) {
	args := c.Called(ctx)

	var s *model.NFLState
	if args.Get(0) != nil {
		s = args.Get(0).(*model.NFLState)
	}
	return s, args.Error(1)
}

func (c *C) CurrentWeek(ctx context.Context) (controller.WeekInfo, error) {
	args := c.Called(ctx)

	var info controller.WeekInfo
	if args.Get(0) != nil {
		info = args.Get(0).(controller.WeekInfo)
	}
	return info, args.Error(1)
}

func (c *C) RefreshWeek(ctx context.Context, week int) ([]model.TeamStanding, error) {
	args := c.Called(ctx, week)

	var res []model.TeamStanding
	if args.Get(0) != nil {
		res = args.Get(0).([]model.TeamStanding)
	}
	return res, args.Error(1)
}

func (c *C) SyncHistorical(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *C) CalculatePlayoffOdds(ctx context.Context) (map[int]float64, error) {
	args := c.Called(ctx)

	var res map[int]float64
	if args.Get(0) != nil {
		res = args.Get(0).(map[int]float64)
	}
	return res, args.Error(1)
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) PollingStatus(ctx context.Context) (*model.PollingStatus, error) {
	args := c.Called(ctx)

	var s *model.PollingStatus
	if args.Get(0) != nil {
		s = args.Get(0).(*model.PollingStatus)
	}
	return s, args.Error(1)
}

func (c *C) SetPollingEnabled(ctx context.Context, enabled bool) (*model.PollingStatus, error) {
	args := c.Called(ctx, enabled)

	var s *model.PollingStatus
	if args.Get(0) != nil {
		s = args.Get(0).(*model.PollingStatus)
	}
	return s, args.Error(1)
}

func (c *C) EvaluatePolling(ctx context.Context) (*model.PollingState, error) {
	args := c.Called(ctx)

	var s *model.PollingState
	if args.Get(0) != nil {
		s = args.Get(0).(*model.PollingState)
	}
	return s, args.Error(1)
}

func (c *C) RunLivePolling(shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(shutdown, wg)
}
