package controller

import (
	"fmt"
	"slices"

	"github.com/itsmikesebringyo/ff-app/model"
)

// BuildWeeklyStandings derives the "vs everyone" standings for one week.
// Teams are ranked against the whole field by total points: a team's
// synthetic record is wins over every team it outscored and losses to
// every team that outscored it. Ties keep their input order.
//
// Any of rosters, users, or players being absent means the data just
// is not ready yet; the result is an empty list, not an error.
func BuildWeeklyStandings(
	rosters []model.Roster,
	users []model.LeagueUser,
	matchups []model.Matchup,
	players map[string]model.PlayerInfo,
	projections map[string]float64,
) []model.TeamStanding {
	if len(rosters) == 0 || len(users) == 0 || len(players) == 0 {
		return []model.TeamStanding{}
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.UserID] = u.BestName()
	}

	points := make(map[int]*model.Matchup, len(matchups))
	for i := range matchups {
		points[matchups[i].RosterID] = &matchups[i]
	}

	standings := make([]model.TeamStanding, 0, len(rosters))
	for _, r := range rosters {
		team := model.TeamStanding{
			RosterID: r.RosterID,
			TeamName: teamName(names, r),
		}

		m := points[r.RosterID]
		if m != nil {
			team.Points = m.Points
		}

		starterIndex := make(map[string]int, len(r.StarterIDs))
		for i, id := range r.StarterIDs {
			starterIndex[id] = i
		}

		// Starters come out in the roster's declared slot order; the
		// slot label follows the index, not the player's position.
		team.Starters = make([]model.PlayerLine, 0, len(r.StarterIDs))
		for i, id := range r.StarterIDs {
			line := buildPlayerLine(id, m, players, projections)
			line.IsStarter = true
			line.Slot = model.SlotLabel(i)
			team.Starters = append(team.Starters, line)
			team.ProjectedTotal += line.ProjectedPoints
		}

		for _, id := range r.PlayerIDs {
			if _, isStarter := starterIndex[id]; isStarter {
				continue
			}
			team.Bench = append(team.Bench, buildPlayerLine(id, m, players, projections))
		}

		standings = append(standings, team)
	}

	// Stable: tied teams keep their relative input order.
	slices.SortStableFunc(standings, func(a, b model.TeamStanding) int {
		switch {
		case a.Points > b.Points:
			return -1
		case a.Points < b.Points:
			return 1
		default:
			return 0
		}
	})

	n := len(standings)
	for i := range standings {
		standings[i].Rank = i + 1
		standings[i].Wins = n - (i + 1)
		standings[i].Losses = i
	}

	return standings
}

func teamName(names map[string]string, r model.Roster) string {
	if name, found := names[r.OwnerID]; found && name != "" {
		return name
	}
	return fmt.Sprintf("Team %d", r.RosterID)
}

func buildPlayerLine(id string, m *model.Matchup, players map[string]model.PlayerInfo, projections map[string]float64) model.PlayerLine {
	line := model.PlayerLine{
		PlayerID:        id,
		Name:            id,
		ProjectedPoints: projections[id],
	}
	if p, found := players[id]; found {
		line.Name = p.FullName()
		line.Position = p.Position
	}
	if m != nil {
		line.Points = m.PlayerPoints[id]
	}
	return line
}

// AggregateOverall rolls weekly standings up into cumulative season
// records. Wins, losses, and points are running sums of the weekly
// synthetic values; rank is recomputed from win percentage with ties
// broken by total points.
func AggregateOverall(weeks map[int][]model.TeamStanding) []model.OverallStanding {
	totals := make(map[int]*model.OverallStanding)

	weekNums := make([]int, 0, len(weeks))
	for w := range weeks {
		weekNums = append(weekNums, w)
	}
	slices.Sort(weekNums)

	for _, w := range weekNums {
		for _, team := range weeks[w] {
			o, found := totals[team.RosterID]
			if !found {
				o = &model.OverallStanding{RosterID: team.RosterID}
				totals[team.RosterID] = o
			}
			o.TeamName = team.TeamName
			o.TotalWins += team.Wins
			o.TotalLosses += team.Losses
			o.TotalPoints += team.Points
			if team.Rank == 1 {
				o.TopFinishes++
			}
		}
	}

	overall := make([]model.OverallStanding, 0, len(totals))
	for _, o := range totals {
		if games := o.TotalWins + o.TotalLosses; games > 0 {
			o.WinPct = float64(o.TotalWins) / float64(games)
		}
		o.Earnings = o.TopFinishes * weeklyPayout
		overall = append(overall, *o)
	}

	slices.SortStableFunc(overall, func(a, b model.OverallStanding) int {
		switch {
		case a.WinPct > b.WinPct:
			return -1
		case a.WinPct < b.WinPct:
			return 1
		case a.TotalPoints > b.TotalPoints:
			return -1
		case a.TotalPoints < b.TotalPoints:
			return 1
		default:
			return a.RosterID - b.RosterID
		}
	})
	for i := range overall {
		overall[i].Rank = i + 1
	}

	return overall
}

// Winning a week pays out of the side pot.
const weeklyPayout = 25
