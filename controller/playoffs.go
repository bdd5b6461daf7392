package controller

import (
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/itsmikesebringyo/ff-app/model"
)

const (
	numSimulations = 10000
	// The last week that counts toward seeding. Playoffs start week 16.
	lastSeedingWeek = 15
	playoffSpots    = 4

	shrinkageStart = 50.0
	shrinkageEnd   = 3.0
	noiseFraction  = 0.15
)

func newSimRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// dynamicLambda interpolates the shrinkage parameter across the season.
// With few completed weeks the team weight is small regardless, so the
// blend leans on the league pool; as evidence accumulates the team's own
// scores dominate.
func dynamicLambda(completedWeeks int) float64 {
	progress := float64(completedWeeks) / float64(lastSeedingWeek-1)
	decay := 1 - math.Sqrt(progress)
	return shrinkageStart - (shrinkageStart-shrinkageEnd)*decay
}

// scorePools splits the stored weekly results into one pool of scores
// per team plus a league-wide pool covering everyone.
func scorePools(weeks map[int][]model.TeamStanding) (map[int][]float64, []float64) {
	teamPools := make(map[int][]float64)
	leaguePool := make([]float64, 0, len(weeks)*10)

	for _, standings := range weeks {
		for _, s := range standings {
			teamPools[s.RosterID] = append(teamPools[s.RosterID], s.Points)
			leaguePool = append(leaguePool, s.Points)
		}
	}
	return teamPools, leaguePool
}

func stddev(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))

	var sq float64
	for _, s := range scores {
		d := s - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(scores)))
}

// SimulatePlayoffOdds runs a Monte Carlo simulation of the rest of the
// regular season and returns each roster's chance of finishing in a
// playoff spot, as a percentage rounded to one decimal.
//
// Each simulated week samples a score for every team as a shrinkage
// blend of the team's own historical scores and the league-wide pool,
// plus gaussian noise scaled to the league's score spread. Weekly
// synthetic wins accumulate on top of the current real records, and the
// top teams by final wins claim the playoff spots.
func SimulatePlayoffOdds(overall []model.OverallStanding, weeks map[int][]model.TeamStanding, currentWeek int, rng *rand.Rand) map[int]float64 {
	teamPools, leaguePool := scorePools(weeks)
	if len(leaguePool) == 0 {
		return map[int]float64{}
	}

	remainingWeeks := lastSeedingWeek - currentWeek + 1
	if remainingWeeks <= 0 {
		return map[int]float64{}
	}

	teamIDs := make([]int, 0, len(overall))
	currentWins := make([]float64, 0, len(overall))
	for _, s := range overall {
		teamIDs = append(teamIDs, s.RosterID)
		currentWins = append(currentWins, float64(s.TotalWins))
	}
	numTeams := len(teamIDs)
	if numTeams == 0 {
		return map[int]float64{}
	}

	completedWeeks := currentWeek - 1
	lambda := dynamicLambda(completedWeeks)
	teamWeight := float64(completedWeeks) / (float64(completedWeeks) + lambda)
	leagueWeight := lambda / (float64(completedWeeks) + lambda)

	noise := stddev(leaguePool) * noiseFraction

	playoffCounts := make([]int, numTeams)
	weekScores := make([]float64, numTeams)
	finalWins := make([]float64, numTeams)
	order := make([]int, numTeams)

	for sim := 0; sim < numSimulations; sim++ {
		copy(finalWins, currentWins)

		for week := 0; week < remainingWeeks; week++ {
			for i, id := range teamIDs {
				pool := teamPools[id]
				if len(pool) == 0 {
					pool = leaguePool
				}
				teamSample := pool[rng.Intn(len(pool))]
				leagueSample := leaguePool[rng.Intn(len(leaguePool))]

				score := teamWeight*teamSample + leagueWeight*leagueSample
				score += rng.NormFloat64() * noise
				if score < 0 {
					score = 0
				}
				weekScores[i] = score
			}

			// Synthetic wins for the simulated week: beat everyone you
			// outscored.
			for i := range order {
				order[i] = i
			}
			slices.SortFunc(order, func(a, b int) int {
				if weekScores[a] > weekScores[b] {
					return -1
				}
				if weekScores[a] < weekScores[b] {
					return 1
				}
				return 0
			})
			for rank, i := range order {
				finalWins[i] += float64(numTeams - (rank + 1))
			}
		}

		for i := range order {
			order[i] = i
		}
		slices.SortFunc(order, func(a, b int) int {
			if finalWins[a] > finalWins[b] {
				return -1
			}
			if finalWins[a] < finalWins[b] {
				return 1
			}
			return 0
		})
		spots := playoffSpots
		if spots > numTeams {
			spots = numTeams
		}
		for _, i := range order[:spots] {
			playoffCounts[i]++
		}
	}

	odds := make(map[int]float64, numTeams)
	for i, id := range teamIDs {
		pct := float64(playoffCounts[i]) / float64(numSimulations) * 100
		odds[id] = math.Round(pct*10) / 10
	}
	return odds
}
