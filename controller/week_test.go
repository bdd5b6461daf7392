package controller

import (
	"testing"
	"time"

	"github.com/itsmikesebringyo/ff-app/model"
)

func TestLaborDay(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{year: 2024, want: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)},
		{year: 2025, want: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)}, // Sep 1 is already a Monday
		{year: 2026, want: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)},
		{year: 2027, want: time.Date(2027, 9, 6, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.want.Format(time.DateOnly), func(t *testing.T) {
			got := laborDay(tc.year, time.UTC)
			if !got.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCalendarWeek(t *testing.T) {
	// The 2025 season starts Thursday Sep 4.
	tests := map[string]struct {
		now  time.Time
		want int
	}{
		"midsummer":             {now: time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC), want: 1},
		"day before kickoff":    {now: time.Date(2025, 9, 3, 23, 0, 0, 0, time.UTC), want: 1},
		"kickoff night":         {now: time.Date(2025, 9, 4, 20, 0, 0, 0, time.UTC), want: 1},
		"first sunday":          {now: time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC), want: 1},
		"second thursday":       {now: time.Date(2025, 9, 11, 20, 0, 0, 0, time.UTC), want: 2},
		"eight weeks in":        {now: time.Date(2025, 10, 30, 20, 0, 0, 0, time.UTC), want: 9},
		"deep into next year":   {now: time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC), want: 17},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := calendarWeek(tc.now); got != tc.want {
				t.Errorf("expected week %d, got %d", tc.want, got)
			}
		})
	}

	// The cap holds no matter how far past kickoff we get.
	for _, d := range []time.Time{
		time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC),
	} {
		if got := calendarWeek(d); got > regularSeasonWeeks {
			t.Errorf("week must be capped at %d, got %d for %v", regularSeasonWeeks, got, d)
		}
	}
}

func TestResolveWeek(t *testing.T) {
	octNow := time.Date(2025, 10, 30, 20, 0, 0, 0, time.UTC) // calendar week 9

	tests := map[string]struct {
		state *model.NFLState
		want  int
	}{
		"no upstream":          {state: nil, want: 9},
		"upstream preferred":   {state: &model.NFLState{Week: 8}, want: 8},
		"upstream zero":        {state: &model.NFLState{Week: 0}, want: 9},
		"upstream out of range": {state: &model.NFLState{Week: 25}, want: 9},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			info := ResolveWeek(octNow, tc.state)
			if info.Week != tc.want {
				t.Errorf("expected week %d, got %d", tc.want, info.Week)
			}
		})
	}

	info := ResolveWeek(octNow, &model.NFLState{Week: 16})
	if !info.IsPlayoff || !info.IsSemifinal || info.IsFinal {
		t.Errorf("week 16 should be the semifinal playoff week: %+v", info)
	}
	info = ResolveWeek(octNow, &model.NFLState{Week: 17})
	if !info.IsPlayoff || info.IsSemifinal || !info.IsFinal {
		t.Errorf("week 17 should be the final: %+v", info)
	}
	if info.SeasonYear != 2025 {
		t.Errorf("expected season year 2025, got %d", info.SeasonYear)
	}
}
