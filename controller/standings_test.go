package controller

import (
	"fmt"
	"testing"

	"github.com/itsmikesebringyo/ff-app/model"
)

func testPlayers() map[string]model.PlayerInfo {
	return map[string]model.PlayerInfo{
		"qb1": {ID: "qb1", FirstName: "Jalen", LastName: "Hurts", Position: model.POS_QB},
		"rb1": {ID: "rb1", FirstName: "Bijan", LastName: "Robinson", Position: model.POS_RB},
		"rb2": {ID: "rb2", FirstName: "Breece", LastName: "Hall", Position: model.POS_RB},
		"wr1": {ID: "wr1", FirstName: "Tyler", LastName: "Lockett", Position: model.POS_WR},
		"wr2": {ID: "wr2", FirstName: "CeeDee", LastName: "Lamb", Position: model.POS_WR},
		"te1": {ID: "te1", FirstName: "T.J.", LastName: "Hockenson", Position: model.POS_TE},
		"wr3": {ID: "wr3", FirstName: "Ja'Marr", LastName: "Chase", Position: model.POS_WR},
		"SEA": {ID: "SEA", FirstName: "Seattle", LastName: "Seahawks", Position: model.POS_DST},
		"qb2": {ID: "qb2", FirstName: "Patrick", LastName: "Mahomes", Position: model.POS_QB},
	}
}

func testRoster(id int, owner string) model.Roster {
	return model.Roster{
		RosterID:   id,
		OwnerID:    owner,
		PlayerIDs:  []string{"qb1", "rb1", "rb2", "wr1", "wr2", "te1", "wr3", "SEA", "qb2"},
		StarterIDs: []string{"qb1", "rb1", "rb2", "wr1", "wr2", "te1", "wr3", "SEA"},
	}
}

func TestBuildWeeklyStandings_starterOrderAndSlots(t *testing.T) {
	rosters := []model.Roster{testRoster(1, "u1")}
	users := []model.LeagueUser{{UserID: "u1", DisplayName: "mike", TeamName: "Puk Nukem"}}
	matchups := []model.Matchup{{
		RosterID: 1,
		Points:   120.5,
		PlayerPoints: map[string]float64{
			"qb1": 22.1, "rb1": 14.0, "rb2": 9.5, "wr1": 7.7,
			"wr2": 18.3, "te1": 6.2, "wr3": 25.7, "SEA": 17.0, "qb2": 31.0,
		},
	}}
	projections := map[string]float64{"qb1": 21.0, "rb1": 16.5, "wr3": 19.9}

	standings := BuildWeeklyStandings(rosters, users, matchups, testPlayers(), projections)
	if len(standings) != 1 {
		t.Fatalf("expected 1 team, got %d", len(standings))
	}

	team := standings[0]
	if team.TeamName != "Puk Nukem" {
		t.Errorf("expected team name override, got %s", team.TeamName)
	}
	if team.Points != 120.5 {
		t.Errorf("team points must come from the matchup total, got %f", team.Points)
	}

	wantOrder := []string{"qb1", "rb1", "rb2", "wr1", "wr2", "te1", "wr3", "SEA"}
	wantSlots := []string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "DST"}
	if len(team.Starters) != len(wantOrder) {
		t.Fatalf("expected %d starters, got %d", len(wantOrder), len(team.Starters))
	}
	for i, s := range team.Starters {
		if s.PlayerID != wantOrder[i] {
			t.Errorf("starter %d: expected %s, got %s", i, wantOrder[i], s.PlayerID)
		}
		if s.Slot != wantSlots[i] {
			t.Errorf("starter %d: expected slot %s, got %s", i, wantSlots[i], s.Slot)
		}
		if !s.IsStarter {
			t.Errorf("starter %d not marked as starter", i)
		}
	}

	// wr3 starts in the FLEX slot even though his position is WR.
	if team.Starters[6].Position != model.POS_WR {
		t.Errorf("expected FLEX starter to keep position WR, got %v", team.Starters[6].Position)
	}

	if len(team.Bench) != 1 || team.Bench[0].PlayerID != "qb2" {
		t.Fatalf("expected qb2 on the bench, got %v", team.Bench)
	}
	if team.Bench[0].IsStarter || team.Bench[0].Slot != "" {
		t.Error("bench players must not carry starter markers")
	}
	if team.Bench[0].Points != 31.0 {
		t.Errorf("bench points not resolved, got %f", team.Bench[0].Points)
	}

	// Projected total is the sum of starter projections only; missing
	// projections count as zero and bench projections never count.
	want := 21.0 + 16.5 + 19.9
	if team.ProjectedTotal != want {
		t.Errorf("expected projected total %f, got %f", want, team.ProjectedTotal)
	}
}

func TestBuildWeeklyStandings_ranksAndSyntheticRecords(t *testing.T) {
	const n = 10
	points := []float64{150.2, 150.2, 140.0, 133.3, 128.9, 120.0, 117.6, 99.9, 88.8, 70.1}

	rosters := make([]model.Roster, 0, n)
	users := make([]model.LeagueUser, 0, n)
	matchups := make([]model.Matchup, 0, n)
	for i := 0; i < n; i++ {
		owner := fmt.Sprintf("u%d", i+1)
		rosters = append(rosters, testRoster(i+1, owner))
		users = append(users, model.LeagueUser{UserID: owner, DisplayName: fmt.Sprintf("team-%d", i+1)})
		matchups = append(matchups, model.Matchup{RosterID: i + 1, Points: points[i]})
	}

	standings := BuildWeeklyStandings(rosters, users, matchups, testPlayers(), nil)
	if len(standings) != n {
		t.Fatalf("expected %d teams, got %d", n, len(standings))
	}

	// Sorted by points descending.
	for i := 1; i < n; i++ {
		if standings[i-1].Points < standings[i].Points {
			t.Errorf("standings not sorted at %d: %f < %f", i, standings[i-1].Points, standings[i].Points)
		}
	}

	// The two tied teams keep their input order.
	if standings[0].RosterID != 1 || standings[1].RosterID != 2 {
		t.Errorf("tied teams must keep input order, got %d then %d", standings[0].RosterID, standings[1].RosterID)
	}

	// Ranks are exactly 1..N and the synthetic record follows the rank.
	seen := make(map[int]bool)
	for i, team := range standings {
		if team.Rank != i+1 {
			t.Errorf("expected rank %d, got %d", i+1, team.Rank)
		}
		if seen[team.Rank] {
			t.Errorf("duplicate rank %d", team.Rank)
		}
		seen[team.Rank] = true

		if team.Wins != n-team.Rank {
			t.Errorf("team rank %d: expected %d wins, got %d", team.Rank, n-team.Rank, team.Wins)
		}
		if team.Losses != team.Rank-1 {
			t.Errorf("team rank %d: expected %d losses, got %d", team.Rank, team.Rank-1, team.Losses)
		}
	}
}

func TestBuildWeeklyStandings_notReady(t *testing.T) {
	rosters := []model.Roster{testRoster(1, "u1")}
	users := []model.LeagueUser{{UserID: "u1", DisplayName: "mike"}}
	players := testPlayers()

	tests := map[string]struct {
		rosters []model.Roster
		users   []model.LeagueUser
		players map[string]model.PlayerInfo
	}{
		"no rosters": {rosters: nil, users: users, players: players},
		"no users":   {rosters: rosters, users: nil, players: players},
		"no players": {rosters: rosters, users: users, players: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := BuildWeeklyStandings(tc.rosters, tc.users, nil, tc.players, nil)
			if got == nil || len(got) != 0 {
				t.Errorf("expected empty standings, got %v", got)
			}
		})
	}
}

func TestBuildWeeklyStandings_missingOwnerFallsBack(t *testing.T) {
	rosters := []model.Roster{testRoster(7, "nobody")}
	users := []model.LeagueUser{{UserID: "u1", DisplayName: "mike"}}

	standings := BuildWeeklyStandings(rosters, users, nil, testPlayers(), nil)
	if len(standings) != 1 {
		t.Fatalf("expected 1 team, got %d", len(standings))
	}
	if standings[0].TeamName != "Team 7" {
		t.Errorf("expected generic team name, got %s", standings[0].TeamName)
	}
}

func TestAggregateOverall(t *testing.T) {
	week1 := []model.TeamStanding{
		{RosterID: 1, TeamName: "a", Rank: 1, Points: 150, Wins: 2, Losses: 0},
		{RosterID: 2, TeamName: "b", Rank: 2, Points: 120, Wins: 1, Losses: 1},
		{RosterID: 3, TeamName: "c", Rank: 3, Points: 100, Wins: 0, Losses: 2},
	}
	week2 := []model.TeamStanding{
		{RosterID: 2, TeamName: "b", Rank: 1, Points: 160, Wins: 2, Losses: 0},
		{RosterID: 3, TeamName: "c", Rank: 2, Points: 110, Wins: 1, Losses: 1},
		{RosterID: 1, TeamName: "a", Rank: 3, Points: 90, Wins: 0, Losses: 2},
	}

	overall := AggregateOverall(map[int][]model.TeamStanding{1: week1, 2: week2})
	if len(overall) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(overall))
	}

	byID := make(map[int]model.OverallStanding)
	for _, o := range overall {
		byID[o.RosterID] = o
	}

	// Cumulative wins are exactly the sum of each week's synthetic wins.
	if got := byID[1]; got.TotalWins != 2 || got.TotalLosses != 2 || got.TotalPoints != 240 {
		t.Errorf("team 1 totals wrong: %+v", got)
	}
	if got := byID[2]; got.TotalWins != 3 || got.TotalLosses != 1 || got.TotalPoints != 280 {
		t.Errorf("team 2 totals wrong: %+v", got)
	}
	if got := byID[3]; got.TotalWins != 1 || got.TotalLosses != 3 || got.TotalPoints != 210 {
		t.Errorf("team 3 totals wrong: %+v", got)
	}

	// Rank follows win percentage.
	if overall[0].RosterID != 2 || overall[0].Rank != 1 {
		t.Errorf("expected team 2 first, got %+v", overall[0])
	}
	if byID[2].WinPct != 0.75 {
		t.Errorf("expected win pct 0.75, got %f", byID[2].WinPct)
	}

	// One weekly top finish each for teams 1 and 2.
	if byID[1].TopFinishes != 1 || byID[1].Earnings != 25 {
		t.Errorf("team 1 earnings wrong: %+v", byID[1])
	}
	if byID[3].TopFinishes != 0 || byID[3].Earnings != 0 {
		t.Errorf("team 3 earnings wrong: %+v", byID[3])
	}
}

func TestAggregateOverall_tieBrokenByPoints(t *testing.T) {
	week1 := []model.TeamStanding{
		{RosterID: 1, TeamName: "a", Rank: 1, Points: 150, Wins: 1, Losses: 0},
		{RosterID: 2, TeamName: "b", Rank: 2, Points: 149, Wins: 0, Losses: 1},
	}
	week2 := []model.TeamStanding{
		{RosterID: 2, TeamName: "b", Rank: 1, Points: 200, Wins: 1, Losses: 0},
		{RosterID: 1, TeamName: "a", Rank: 2, Points: 100, Wins: 0, Losses: 1},
	}

	overall := AggregateOverall(map[int][]model.TeamStanding{1: week1, 2: week2})

	// Both teams are 1-1; team 2 has more total points and ranks first.
	if overall[0].RosterID != 2 {
		t.Errorf("expected points tiebreak to favor team 2, got team %d", overall[0].RosterID)
	}
	if overall[0].Rank != 1 || overall[1].Rank != 2 {
		t.Errorf("ranks wrong: %d, %d", overall[0].Rank, overall[1].Rank)
	}
}
