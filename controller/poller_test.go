package controller

import (
	"context"
	"testing"

	"github.com/itsmikesebringyo/ff-app/db/mockdb"
	"github.com/itsmikesebringyo/ff-app/model"
)

func TestMatchupSignature(t *testing.T) {
	tests := map[string]struct {
		matchups []model.Matchup
		expected string
	}{
		"empty": {
			matchups: []model.Matchup{},
			expected: "",
		},
		"single": {
			matchups: []model.Matchup{{RosterID: 1, Points: 101.5}},
			expected: "1:101.50",
		},
		"order does not matter": {
			matchups: []model.Matchup{
				{RosterID: 2, Points: 88.1},
				{RosterID: 1, Points: 101.5},
			},
			expected: "1:101.50|2:88.10",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if sig := matchupSignature(tc.matchups); sig != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, sig)
			}
		})
	}
}

func TestMatchupSignature_detectsScoreChange(t *testing.T) {
	before := []model.Matchup{
		{RosterID: 1, Points: 101.5},
		{RosterID: 2, Points: 88.1},
	}
	after := []model.Matchup{
		{RosterID: 1, Points: 101.5},
		{RosterID: 2, Points: 94.7},
	}

	if matchupSignature(before) == matchupSignature(after) {
		t.Error("a score change must produce a different signature")
	}
}

func TestEvaluatePolling(t *testing.T) {
	ctx := context.Background()

	t.Run("live during a sunday game window", func(t *testing.T) {
		c := newTestController(t, liveTime, &mockdb.DB{})

		state, err := c.EvaluatePolling(ctx)
		if err != nil {
			t.Fatalf("error evaluating polling: %v", err)
		}
		if !state.IsLive {
			t.Error("expected live polling during sunday games")
		}
		if state.IntervalMs != 10000 {
			t.Errorf("expected a 10000ms interval, got %d", state.IntervalMs)
		}
	})

	t.Run("idle on a wednesday morning", func(t *testing.T) {
		c := newTestController(t, idleTime, &mockdb.DB{})

		state, err := c.EvaluatePolling(ctx)
		if err != nil {
			t.Fatalf("error evaluating polling: %v", err)
		}
		if state.IsLive {
			t.Error("expected idle polling on a wednesday morning")
		}
		if state.IntervalMs != 0 {
			t.Errorf("expected no interval while idle, got %d", state.IntervalMs)
		}
	})
}
