package controller

import (
	"time"

	"github.com/itsmikesebringyo/ff-app/model"
)

const regularSeasonWeeks = 18

// WeekInfo describes the resolved current week and where it falls in
// the season.
type WeekInfo struct {
	Week        int
	IsPlayoff   bool
	IsSemifinal bool
	IsFinal     bool
	SeasonYear  int
}

// laborDay returns the first Monday of September for year.
func laborDay(year int, loc *time.Location) time.Time {
	sept := time.Date(year, time.September, 1, 0, 0, 0, 0, loc)
	offset := (int(time.Monday) - int(sept.Weekday()) + 7) % 7
	return sept.AddDate(0, 0, offset)
}

// seasonStart returns the start of the NFL season for year: the
// Thursday three days after Labor Day.
func seasonStart(year int, loc *time.Location) time.Time {
	return laborDay(year, loc).AddDate(0, 0, 3)
}

// calendarWeek computes the NFL week from calendar math alone: week 1
// until the season starts, then one week per seven elapsed days, capped
// at the end of the regular season.
func calendarWeek(now time.Time) int {
	start := seasonStart(now.Year(), now.Location())
	if now.Before(start) {
		return 1
	}

	elapsed := int(now.Sub(start) / (7 * 24 * time.Hour))
	week := elapsed + 1
	if week > regularSeasonWeeks {
		return regularSeasonWeeks
	}
	return week
}

// ResolveWeek produces the best-effort current week. An upstream week in
// [1, 18] is preferred; otherwise the calendar computation decides.
func ResolveWeek(now time.Time, state *model.NFLState) WeekInfo {
	week := calendarWeek(now)
	if state != nil && state.Week >= 1 && state.Week <= regularSeasonWeeks {
		week = state.Week
	}

	return WeekInfo{
		Week:        week,
		IsPlayoff:   week >= 16,
		IsSemifinal: week == 16,
		IsFinal:     week == 17,
		SeasonYear:  now.Year(),
	}
}
