package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/itsmikesebringyo/ff-app/db"
	"github.com/itsmikesebringyo/ff-app/db/mockdb"
	"github.com/itsmikesebringyo/ff-app/model"
	"github.com/itsmikesebringyo/ff-app/sleeper"
	"github.com/itsmikesebringyo/ff-app/testutils"
	"github.com/stretchr/testify/mock"
)

// An idle Wednesday morning and a live Sunday afternoon, both during
// week 5 of the 2025 season to line up with the fixture nfl state.
var (
	idleTime = time.Date(2025, time.October, 8, 11, 0, 0, 0, time.UTC)
	liveTime = time.Date(2025, time.October, 5, 13, 0, 0, 0, time.UTC)
)

func newTestController(t *testing.T, now time.Time, mdb *mockdb.DB) C {
	t.Helper()

	server := testutils.NewFakeSleeperServer()
	t.Cleanup(server.Close)

	m := clock.NewMock()
	m.Set(now)

	c, err := New(m, sleeper.NewForTest(server.URL()), mdb, testutils.TestLeagueID, "2025")
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return c
}

func TestRefreshWeek(t *testing.T) {
	ctx := context.Background()
	mdb := &mockdb.DB{}

	var saved []model.TeamStanding
	mdb.On("SaveWeeklyStandings", mock.Anything, "2025", 1, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(3).([]model.TeamStanding)
		}).
		Return(nil)
	mdb.On("GetSeasonWeeks", mock.Anything, "2025").
		Return(map[int][]model.TeamStanding{}, nil)
	mdb.On("SaveOverallStandings", mock.Anything, "2025", mock.Anything).
		Return(nil)

	c := newTestController(t, idleTime, mdb)

	standings, err := c.RefreshWeek(ctx, 1)
	if err != nil {
		t.Fatalf("error refreshing week: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(standings))
	}
	if standings[0].Points != 142.56 || standings[1].Points != 117.32 {
		t.Errorf("unexpected points order: %f, %f", standings[0].Points, standings[1].Points)
	}
	if standings[0].Rank != 1 || standings[1].Rank != 2 {
		t.Errorf("unexpected ranks: %d, %d", standings[0].Rank, standings[1].Rank)
	}
	if len(saved) != 2 {
		t.Errorf("expected the computed standings to be persisted, saved %d", len(saved))
	}

	mdb.AssertExpectations(t)
}

func TestGetWeeklyStandings_storedWeekSkipsRefresh(t *testing.T) {
	ctx := context.Background()
	mdb := &mockdb.DB{}

	stored := testutils.WeeklyStandings(4)
	mdb.On("GetWeeklyStandings", mock.Anything, "2025", 3).Return(stored, nil)

	c := newTestController(t, idleTime, mdb)

	standings, err := c.GetWeeklyStandings(ctx, 3)
	if err != nil {
		t.Fatalf("error getting weekly standings: %v", err)
	}
	if len(standings) != 4 {
		t.Errorf("expected the stored standings, got %d teams", len(standings))
	}
	mdb.AssertNotCalled(t, "SaveWeeklyStandings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetWeeklyStandings_missingWeekTriggersRefresh(t *testing.T) {
	ctx := context.Background()
	mdb := &mockdb.DB{}

	mdb.On("GetWeeklyStandings", mock.Anything, "2025", 1).Return(nil, db.ErrNotFound)
	mdb.On("SaveWeeklyStandings", mock.Anything, "2025", 1, mock.Anything).Return(nil)
	mdb.On("GetSeasonWeeks", mock.Anything, "2025").Return(map[int][]model.TeamStanding{}, nil)
	mdb.On("SaveOverallStandings", mock.Anything, "2025", mock.Anything).Return(nil)

	c := newTestController(t, idleTime, mdb)

	standings, err := c.GetWeeklyStandings(ctx, 1)
	if err != nil {
		t.Fatalf("error getting weekly standings: %v", err)
	}
	if len(standings) != 2 {
		t.Errorf("expected a freshly computed week, got %d teams", len(standings))
	}
	mdb.AssertExpectations(t)
}

func TestGetWeeklyStandings_dbError(t *testing.T) {
	ctx := context.Background()
	mdb := &mockdb.DB{}

	dbErr := errors.New("connection refused")
	mdb.On("GetWeeklyStandings", mock.Anything, "2025", 3).Return(nil, dbErr)

	c := newTestController(t, idleTime, mdb)

	if _, err := c.GetWeeklyStandings(ctx, 3); !errors.Is(err, dbErr) {
		t.Errorf("expected the db error to propagate, got: %v", err)
	}
}

func TestCurrentWeek(t *testing.T) {
	mdb := &mockdb.DB{}
	c := newTestController(t, idleTime, mdb)

	// The fixture nfl state reports week 5, which wins over the
	// calendar computation.
	info, err := c.CurrentWeek(context.Background())
	if err != nil {
		t.Fatalf("error getting current week: %v", err)
	}
	if info.Week != 5 {
		t.Errorf("expected week 5, got %d", info.Week)
	}
	if info.IsPlayoff || info.IsSemifinal || info.IsFinal {
		t.Errorf("week 5 should not have playoff flags: %+v", info)
	}
}

func TestPollingStatus_cachedRead(t *testing.T) {
	ctx := context.Background()
	mdb := &mockdb.DB{}

	mdb.On("GetPollingStatus", mock.Anything).
		Return(&model.PollingStatus{Enabled: true, Status: "active"}, nil).
		Once()

	c := newTestController(t, idleTime, mdb)

	for i := 0; i < 3; i++ {
		status, err := c.PollingStatus(ctx)
		if err != nil {
			t.Fatalf("error getting polling status: %v", err)
		}
		if !status.Enabled {
			t.Error("expected polling to be enabled")
		}
	}
	// Only the first read should have hit the db.
	mdb.AssertExpectations(t)
}

func TestSetPollingEnabled_invalidatesCache(t *testing.T) {
	ctx := context.Background()
	mdb := &mockdb.DB{}

	mdb.On("GetPollingStatus", mock.Anything).
		Return(&model.PollingStatus{Enabled: false, Status: "stopped"}, nil).
		Once()
	mdb.On("SetPollingEnabled", mock.Anything, true).
		Return(&model.PollingStatus{Enabled: true, Status: "active"}, nil)
	mdb.On("GetPollingStatus", mock.Anything).
		Return(&model.PollingStatus{Enabled: true, Status: "active"}, nil).
		Once()

	c := newTestController(t, idleTime, mdb)

	before, err := c.PollingStatus(ctx)
	if err != nil {
		t.Fatalf("error getting polling status: %v", err)
	}
	if before.Enabled {
		t.Error("expected polling to start disabled")
	}

	if _, err := c.SetPollingEnabled(ctx, true); err != nil {
		t.Fatalf("error enabling polling: %v", err)
	}

	after, err := c.PollingStatus(ctx)
	if err != nil {
		t.Fatalf("error getting polling status after toggle: %v", err)
	}
	if !after.Enabled {
		t.Error("expected the toggle to be visible immediately")
	}
	mdb.AssertExpectations(t)
}

func TestSyncHistorical(t *testing.T) {
	ctx := context.Background()
	mdb := &mockdb.DB{}

	// The fixture only has matchup data for week 1; weeks 2-4 come back
	// empty from the platform but still compute and store. All 4
	// completed weeks should sync.
	mdb.On("SaveWeeklyStandings", mock.Anything, "2025", mock.Anything, mock.Anything).
		Return(nil).
		Times(4)
	mdb.On("GetSeasonWeeks", mock.Anything, "2025").
		Return(map[int][]model.TeamStanding{}, nil)
	mdb.On("SaveOverallStandings", mock.Anything, "2025", mock.Anything).
		Return(nil)

	c := newTestController(t, idleTime, mdb)

	synced, err := c.SyncHistorical(ctx)
	if err != nil {
		t.Fatalf("error syncing historical weeks: %v", err)
	}
	if synced != 4 {
		t.Errorf("expected 4 weeks synced, got %d", synced)
	}
	mdb.AssertExpectations(t)
}

func TestUpdatePlayers(t *testing.T) {
	mdb := &mockdb.DB{}
	c := newTestController(t, idleTime, mdb)

	if err := c.UpdatePlayers(context.Background()); err != nil {
		t.Fatalf("error updating players: %v", err)
	}
}
