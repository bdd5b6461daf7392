package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/itsmikesebringyo/ff-app/cache"
	"github.com/itsmikesebringyo/ff-app/db"
	"github.com/itsmikesebringyo/ff-app/model"
	"github.com/itsmikesebringyo/ff-app/sleeper"
)

const (
	// The platform's season phase moves rarely, so its cache outlives the
	// live-data TTLs. The polling loop rechecks it on this cadence too.
	stateTTL = 5 * time.Minute
	// The player directory is ~5MB upstream and changes daily at most.
	playersTTL = 24 * time.Hour
	// The polling switch lives in the db; cache reads so the status
	// endpoint doesn't hit postgres on every request.
	pollingStatusTTL = time.Hour
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// GetWeeklyStandings returns the stored standings for week. If the
	// week has never been computed it is refreshed from the platform
	// first.
	GetWeeklyStandings(ctx context.Context, week int) ([]model.TeamStanding, error)
	GetOverallStandings(ctx context.Context) ([]model.OverallStanding, error)
	GetNFLState(ctx context.Context) (*model.NFLState, error)
	CurrentWeek(ctx context.Context) (WeekInfo, error)

	// RefreshWeek fetches fresh league data, recomputes the week's
	// standings, persists them, and folds the result into the overall
	// standings. week == 0 means the current week.
	RefreshWeek(ctx context.Context, week int) ([]model.TeamStanding, error)
	// SyncHistorical recomputes every completed week of the season.
	// Individual week failures are logged and skipped; the returned count
	// is the number of weeks successfully synced.
	SyncHistorical(ctx context.Context) (int, error)
	CalculatePlayoffOdds(ctx context.Context) (map[int]float64, error)
	UpdatePlayers(ctx context.Context) error

	PollingStatus(ctx context.Context) (*model.PollingStatus, error)
	SetPollingEnabled(ctx context.Context, enabled bool) (*model.PollingStatus, error)
	EvaluatePolling(ctx context.Context) (*model.PollingState, error)
	RunLivePolling(shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock    clock.Clock
	sleeper  sleeper.Client
	db       db.DB
	leagueID string
	season   string

	rosters       *cache.Cache[[]model.Roster]
	users         *cache.Cache[[]model.LeagueUser]
	matchups      *cache.Cache[[]model.Matchup]
	players       *cache.Cache[map[string]model.PlayerInfo]
	projections   *cache.Cache[map[string]float64]
	nflState      *cache.Cache[*model.NFLState]
	pollingStatus *cache.Cache[*model.PollingStatus]
}

func New(clock clock.Clock, sleeper sleeper.Client, db db.DB, leagueID, season string) (C, error) {
	if leagueID == "" {
		return nil, errors.New("leagueID must be provided")
	}
	c := &controller{
		clock:         clock,
		sleeper:       sleeper,
		db:            db,
		leagueID:      leagueID,
		season:        season,
		rosters:       cache.New[[]model.Roster](clock),
		users:         cache.New[[]model.LeagueUser](clock),
		matchups:      cache.New[[]model.Matchup](clock),
		players:       cache.New[map[string]model.PlayerInfo](clock),
		projections:   cache.New[map[string]float64](clock),
		nflState:      cache.New[*model.NFLState](clock),
		pollingStatus: cache.New[*model.PollingStatus](clock),
	}
	return c, nil
}

func (c *controller) GetNFLState(ctx context.Context) (*model.NFLState, error) {
	return c.nflState.GetOrFetch(ctx, "nflstate", stateTTL, func(context.Context) (*model.NFLState, error) {
		return c.sleeper.GetNFLState()
	})
}

func (c *controller) CurrentWeek(ctx context.Context) (WeekInfo, error) {
	state, err := c.GetNFLState(ctx)
	if err != nil {
		// The calendar fallback still produces a usable week.
		log.Printf("error getting nfl state, falling back to calendar: %v", err)
	}
	return ResolveWeek(c.clock.Now(), state), nil
}

func (c *controller) GetWeeklyStandings(ctx context.Context, week int) ([]model.TeamStanding, error) {
	standings, err := c.db.GetWeeklyStandings(ctx, c.season, week)
	if err == nil {
		return standings, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}
	return c.RefreshWeek(ctx, week)
}

func (c *controller) GetOverallStandings(ctx context.Context) ([]model.OverallStanding, error) {
	return c.db.GetOverallStandings(ctx, c.season)
}

func (c *controller) RefreshWeek(ctx context.Context, week int) ([]model.TeamStanding, error) {
	state, _ := c.GetNFLState(ctx)
	if week == 0 {
		week = ResolveWeek(c.clock.Now(), state).Week
	}

	standings, err := c.buildWeek(ctx, week, state)
	if err != nil {
		return nil, err
	}

	if err := c.db.SaveWeeklyStandings(ctx, c.season, week, standings); err != nil {
		return nil, fmt.Errorf("error saving standings for week %d: %w", week, err)
	}
	if err := c.recomputeOverall(ctx); err != nil {
		return nil, err
	}

	return standings, nil
}

// buildWeek fetches everything a week's standings need and runs the
// computation. The TTL for the fetches depends on whether games are
// being played right now.
func (c *controller) buildWeek(ctx context.Context, week int, state *model.NFLState) ([]model.TeamStanding, error) {
	ttl := c.dataTTL(week, state)

	rosters, err := c.rosters.GetOrFetch(ctx, "rosters:"+c.leagueID, ttl, func(context.Context) ([]model.Roster, error) {
		return c.sleeper.GetRosters(c.leagueID)
	})
	if err != nil {
		return nil, fmt.Errorf("error getting rosters: %w", err)
	}

	users, err := c.users.GetOrFetch(ctx, "users:"+c.leagueID, ttl, func(context.Context) ([]model.LeagueUser, error) {
		return c.sleeper.GetUsers(c.leagueID)
	})
	if err != nil {
		return nil, fmt.Errorf("error getting users: %w", err)
	}

	matchups, err := c.weekMatchups(ctx, week, ttl)
	if err != nil {
		return nil, err
	}

	players, err := c.players.GetOrFetch(ctx, "players", playersTTL, func(context.Context) (map[string]model.PlayerInfo, error) {
		return c.sleeper.LoadPlayers()
	})
	if err != nil {
		return nil, fmt.Errorf("error loading players: %w", err)
	}

	projKey := fmt.Sprintf("projections:%s:%d", c.season, week)
	projections, err := c.projections.GetOrFetch(ctx, projKey, ttl, func(context.Context) (map[string]float64, error) {
		return c.sleeper.GetProjections(model.SeasonTypeRegular, c.season, week)
	})
	if err != nil {
		// Projections are decoration on the standings, not an input to
		// the ranking. A miss should not block a refresh.
		log.Printf("error getting projections for week %d: %v", week, err)
		projections = map[string]float64{}
	}

	return BuildWeeklyStandings(rosters, users, matchups, players, projections), nil
}

func (c *controller) weekMatchups(ctx context.Context, week int, ttl time.Duration) ([]model.Matchup, error) {
	key := fmt.Sprintf("matchups:%s:%d", c.leagueID, week)
	matchups, err := c.matchups.GetOrFetch(ctx, key, ttl, func(context.Context) ([]model.Matchup, error) {
		return c.sleeper.GetMatchups(c.leagueID, week)
	})
	if err != nil {
		return nil, fmt.Errorf("error getting matchups for week %d: %w", week, err)
	}
	return matchups, nil
}

func (c *controller) recomputeOverall(ctx context.Context) error {
	weeks, err := c.db.GetSeasonWeeks(ctx, c.season)
	if err != nil {
		return fmt.Errorf("error loading season weeks: %w", err)
	}
	overall := AggregateOverall(weeks)
	if err := c.db.SaveOverallStandings(ctx, c.season, overall); err != nil {
		return fmt.Errorf("error saving overall standings: %w", err)
	}
	return nil
}

func (c *controller) SyncHistorical(ctx context.Context) (int, error) {
	current, err := c.CurrentWeek(ctx)
	if err != nil {
		return 0, err
	}

	synced := 0
	for week := 1; week < current.Week; week++ {
		standings, err := c.buildWeek(ctx, week, nil)
		if err != nil {
			log.Printf("sync: skipping week %d: %v", week, err)
			continue
		}
		if err := c.db.SaveWeeklyStandings(ctx, c.season, week, standings); err != nil {
			log.Printf("sync: error saving week %d: %v", week, err)
			continue
		}
		synced++
	}

	if synced > 0 {
		if err := c.recomputeOverall(ctx); err != nil {
			return synced, err
		}
	}
	return synced, nil
}

func (c *controller) CalculatePlayoffOdds(ctx context.Context) (map[int]float64, error) {
	overall, err := c.db.GetOverallStandings(ctx, c.season)
	if err != nil {
		return nil, fmt.Errorf("error loading overall standings: %w", err)
	}
	if len(overall) == 0 {
		return nil, errors.New("no overall standings to simulate from")
	}

	weeks, err := c.db.GetSeasonWeeks(ctx, c.season)
	if err != nil {
		return nil, fmt.Errorf("error loading season weeks: %w", err)
	}

	current, err := c.CurrentWeek(ctx)
	if err != nil {
		return nil, err
	}

	odds := SimulatePlayoffOdds(overall, weeks, current.Week, newSimRand())
	if err := c.db.SavePlayoffOdds(ctx, c.season, odds); err != nil {
		return nil, fmt.Errorf("error saving playoff odds: %w", err)
	}
	return odds, nil
}

func (c *controller) UpdatePlayers(ctx context.Context) error {
	c.players.Invalidate("players")
	_, err := c.players.GetOrFetch(ctx, "players", playersTTL, func(context.Context) (map[string]model.PlayerInfo, error) {
		return c.sleeper.LoadPlayers()
	})
	if err != nil {
		return fmt.Errorf("error refreshing player directory: %w", err)
	}
	return nil
}

func (c *controller) PollingStatus(ctx context.Context) (*model.PollingStatus, error) {
	return c.pollingStatus.GetOrFetch(ctx, "polling", pollingStatusTTL, func(ctx context.Context) (*model.PollingStatus, error) {
		return c.db.GetPollingStatus(ctx)
	})
}

func (c *controller) SetPollingEnabled(ctx context.Context, enabled bool) (*model.PollingStatus, error) {
	status, err := c.db.SetPollingEnabled(ctx, enabled)
	if err != nil {
		return nil, err
	}
	c.pollingStatus.Invalidate("polling")
	return status, nil
}

// dataTTL picks the cache lifetime for league data fetches: a short TTL
// while games are live so scores track closely, a long one otherwise.
func (c *controller) dataTTL(week int, state *model.NFLState) time.Duration {
	if IsGameTime(c.clock.Now(), HeuristicAndUpstream, week, state) {
		return cache.LiveTTL
	}
	return cache.IdleTTL
}
