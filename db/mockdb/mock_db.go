package mockdb

import (
	"context"

	"github.com/itsmikesebringyo/ff-app/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) SaveWeeklyStandings(ctx context.Context, season string, week int, standings []model.TeamStanding) error {
	args := db.Called(ctx, season, week, standings)
	return args.Error(0)
}

func (db *DB) GetWeeklyStandings(ctx context.Context, season string, week int) ([]model.TeamStanding, error) {
	args := db.Called(ctx, season, week)

	var r []model.TeamStanding
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TeamStanding)
	}
	return r, args.Error(1)
}

func (db *DB) GetSeasonWeeks(ctx context.Context, season string) (map[int][]model.TeamStanding, error) {
	args := db.Called(ctx, season)

	var r map[int][]model.TeamStanding
	if args.Get(0) != nil {
		r = args.Get(0).(map[int][]model.TeamStanding)
	}
	return r, args.Error(1)
}

func (db *DB) SaveOverallStandings(ctx context.Context, season string, standings []model.OverallStanding) error {
	args := db.Called(ctx, season, standings)
	return args.Error(0)
}

func (db *DB) GetOverallStandings(ctx context.Context, season string) ([]model.OverallStanding, error) {
	args := db.Called(ctx, season)

	var r []model.OverallStanding
	if args.Get(0) != nil {
		r = args.Get(0).([]model.OverallStanding)
	}
	return r, args.Error(1)
}

func (db *DB) SavePlayoffOdds(ctx context.Context, season string, odds map[int]float64) error {
	args := db.Called(ctx, season, odds)
	return args.Error(0)
}

func (db *DB) GetPollingStatus(ctx context.Context) (*model.PollingStatus, error) {
	args := db.Called(ctx)

	var s *model.PollingStatus
	if args.Get(0) != nil {
		s = args.Get(0).(*model.PollingStatus)
	}
	return s, args.Error(1)
}

func (db *DB) SetPollingEnabled(ctx context.Context, enabled bool) (*model.PollingStatus, error) {
	args := db.Called(ctx, enabled)

	var s *model.PollingStatus
	if args.Get(0) != nil {
		s = args.Get(0).(*model.PollingStatus)
	}
	return s, args.Error(1)
}

func (db *DB) Close() {
	db.Called()
}
