package testutils

import (
	"fmt"

	"github.com/itsmikesebringyo/ff-app/model"
)

// WeeklyStandings builds a plausible n-team week of standings for db
// round trip tests. Points descend with rank so the synthetic records
// are internally consistent.
func WeeklyStandings(n int) []model.TeamStanding {
	standings := make([]model.TeamStanding, 0, n)
	for i := 0; i < n; i++ {
		rank := i + 1
		standings = append(standings, model.TeamStanding{
			RosterID:       rank,
			TeamName:       fmt.Sprintf("Team %d", rank),
			Rank:           rank,
			Points:         150.0 - float64(i)*3.5,
			ProjectedTotal: 145.0 - float64(i)*3.0,
			Wins:           n - rank,
			Losses:         rank - 1,
			Starters: []model.PlayerLine{
				{PlayerID: fmt.Sprintf("%d", 1000+i), Name: fmt.Sprintf("Starter %d", rank), Position: model.POS_QB, Slot: "QB", Points: 22.5, ProjectedPoints: 20.1, IsStarter: true},
			},
			Bench: []model.PlayerLine{
				{PlayerID: fmt.Sprintf("%d", 2000+i), Name: fmt.Sprintf("Bench %d", rank), Position: model.POS_RB, Points: 8.0, ProjectedPoints: 9.5},
			},
		})
	}
	return standings
}
