package controller

import (
	"time"

	"github.com/itsmikesebringyo/ff-app/model"
)

// GameClockPolicy selects how the live-game decision composes the
// local-time heuristic with upstream season state. Call sites choose
// explicitly; there is no single merged rule.
type GameClockPolicy int

const (
	// HeuristicOnly gates purely on the day/hour table.
	HeuristicOnly GameClockPolicy = iota
	// HeuristicAndUpstream additionally requires the upstream state to
	// report the regular season and, when a target week is given, that
	// the upstream week matches it. Missing upstream state degrades to
	// heuristic-only.
	HeuristicAndUpstream
)

// isActiveGameDay reports whether local wall-clock time falls inside a
// window when NFL games are typically in progress.
//
//	Thursday: evening games from 5 PM
//	Sunday:   6 AM through 11 PM
//	Monday:   evening games, 5 PM through 11 PM
//	Saturday: late-season games, 4 PM through 11 PM
func isActiveGameDay(now time.Time) bool {
	hour := now.Hour()
	switch now.Weekday() {
	case time.Thursday:
		return hour >= 17
	case time.Sunday:
		return hour >= 6 && hour <= 23
	case time.Monday:
		return hour >= 17 && hour <= 23
	case time.Saturday:
		return hour >= 16 && hour <= 23
	default:
		return false
	}
}

// IsGameTime decides whether live NFL games are plausibly in progress at
// now, optionally narrowed to targetWeek (0 means any week). It never
// fails: with no upstream state the heuristic alone decides.
func IsGameTime(now time.Time, policy GameClockPolicy, targetWeek int, state *model.NFLState) bool {
	if !isActiveGameDay(now) {
		return false
	}
	if policy == HeuristicOnly || state == nil {
		return true
	}

	if !state.RegularSeason() {
		return false
	}
	if targetWeek != 0 && state.Week != targetWeek {
		return false
	}
	return true
}
