package db

import (
	"context"
	"errors"

	"github.com/itsmikesebringyo/ff-app/model"
)

var ErrNotFound = errors.New("not found")

type DB interface {
	// Weekly standings are replaced wholesale for a week; a refresh
	// recomputes the full field.
	SaveWeeklyStandings(ctx context.Context, season string, week int, standings []model.TeamStanding) error
	GetWeeklyStandings(ctx context.Context, season string, week int) ([]model.TeamStanding, error)
	// GetSeasonWeeks returns every stored week for the season, keyed by
	// week number.
	GetSeasonWeeks(ctx context.Context, season string) (map[int][]model.TeamStanding, error)

	// Overall standings are upserted; the stored playoff percentage is
	// preserved across recomputes and only changed by SavePlayoffOdds.
	SaveOverallStandings(ctx context.Context, season string, standings []model.OverallStanding) error
	GetOverallStandings(ctx context.Context, season string) ([]model.OverallStanding, error)
	SavePlayoffOdds(ctx context.Context, season string, odds map[int]float64) error

	GetPollingStatus(ctx context.Context) (*model.PollingStatus, error)
	SetPollingEnabled(ctx context.Context, enabled bool) (*model.PollingStatus, error)

	Close()
}
