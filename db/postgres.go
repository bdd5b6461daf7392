package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/itsmikesebringyo/ff-app/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) Close() {
	db.pool.Close()
}

func (db *postgresDB) SaveWeeklyStandings(ctx context.Context, season string, week int, standings []model.TeamStanding) error {
	const del = `DELETE FROM weekly_standings WHERE season=@season AND week=@week`

	const insert = `INSERT INTO weekly_standings (
		season,
		week,
		roster_id,
		team_name,
		rank,
		points,
		projected_total,
		wins,
		losses,
		starters,
		bench,
		updated
	) VALUES (
		@season,
		@week,
		@rosterID,
		@teamName,
		@rank,
		@points,
		@projectedTotal,
		@wins,
		@losses,
		@starters,
		@bench,
		@updated
	)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, del, pgx.NamedArgs{"season": season, "week": week})
	if err != nil {
		return fmt.Errorf("error clearing weekly standings for week %d: %w", week, err)
	}

	for _, s := range standings {
		starters, err := json.Marshal(s.Starters)
		if err != nil {
			return fmt.Errorf("error marshaling starters for roster %d: %w", s.RosterID, err)
		}
		bench, err := json.Marshal(s.Bench)
		if err != nil {
			return fmt.Errorf("error marshaling bench for roster %d: %w", s.RosterID, err)
		}

		args := pgx.NamedArgs{
			"season":         season,
			"week":           week,
			"rosterID":       s.RosterID,
			"teamName":       s.TeamName,
			"rank":           s.Rank,
			"points":         s.Points,
			"projectedTotal": s.ProjectedTotal,
			"wins":           s.Wins,
			"losses":         s.Losses,
			"starters":       starters,
			"bench":          bench,
			"updated":        db.timestamp(),
		}
		_, err = tx.Exec(ctx, insert, args)
		if err != nil {
			return fmt.Errorf("error inserting weekly standing for roster %d: %w", s.RosterID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing weekly standings: %w", err)
	}
	return nil
}

func (db *postgresDB) GetWeeklyStandings(ctx context.Context, season string, week int) ([]model.TeamStanding, error) {
	const query = `SELECT roster_id, team_name, rank, points, projected_total,
						wins, losses, starters, bench
					FROM weekly_standings
					WHERE season=@season AND week=@week
					ORDER BY rank`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"season": season, "week": week})
	if err != nil {
		return nil, fmt.Errorf("error querying weekly standings: %w", err)
	}

	results := make([]model.TeamStanding, 0, 10)
	for rows.Next() {
		s, err := scanTeamStanding(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *s)
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	return results, nil
}

func (db *postgresDB) GetSeasonWeeks(ctx context.Context, season string) (map[int][]model.TeamStanding, error) {
	const query = `SELECT week, roster_id, team_name, rank, points, projected_total,
						wins, losses, starters, bench
					FROM weekly_standings
					WHERE season=@season
					ORDER BY week, rank`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"season": season})
	if err != nil {
		return nil, fmt.Errorf("error querying season weeks: %w", err)
	}

	results := make(map[int][]model.TeamStanding)
	for rows.Next() {
		var week int
		var s model.TeamStanding
		var starters, bench []byte
		err := rows.Scan(&week, &s.RosterID, &s.TeamName, &s.Rank, &s.Points,
			&s.ProjectedTotal, &s.Wins, &s.Losses, &starters, &bench)
		if err != nil {
			return nil, fmt.Errorf("error scanning season week row: %w", err)
		}
		if err := json.Unmarshal(starters, &s.Starters); err != nil {
			return nil, fmt.Errorf("error unmarshaling starters: %w", err)
		}
		if err := json.Unmarshal(bench, &s.Bench); err != nil {
			return nil, fmt.Errorf("error unmarshaling bench: %w", err)
		}
		results[week] = append(results[week], s)
	}

	return results, nil
}

func scanTeamStanding(row pgx.Row) (*model.TeamStanding, error) {
	var s model.TeamStanding
	var starters, bench []byte
	err := row.Scan(&s.RosterID, &s.TeamName, &s.Rank, &s.Points,
		&s.ProjectedTotal, &s.Wins, &s.Losses, &starters, &bench)
	if err != nil {
		return nil, fmt.Errorf("error scanning weekly standing: %w", err)
	}
	if err := json.Unmarshal(starters, &s.Starters); err != nil {
		return nil, fmt.Errorf("error unmarshaling starters: %w", err)
	}
	if err := json.Unmarshal(bench, &s.Bench); err != nil {
		return nil, fmt.Errorf("error unmarshaling bench: %w", err)
	}
	return &s, nil
}

func (db *postgresDB) SaveOverallStandings(ctx context.Context, season string, standings []model.OverallStanding) error {
	// The playoff percentage is deliberately left out of the update list.
	// It is written only by SavePlayoffOdds so that a standings recompute
	// doesn't wipe the last simulation result.
	const upsert = `INSERT INTO overall_standings (
		season,
		roster_id,
		team_name,
		rank,
		total_wins,
		total_losses,
		total_points,
		win_pct,
		top_finishes,
		earnings,
		updated
	) VALUES (
		@season,
		@rosterID,
		@teamName,
		@rank,
		@totalWins,
		@totalLosses,
		@totalPoints,
		@winPct,
		@topFinishes,
		@earnings,
		@updated
	) ON CONFLICT (season, roster_id) DO UPDATE SET
		team_name=EXCLUDED.team_name,
		rank=EXCLUDED.rank,
		total_wins=EXCLUDED.total_wins,
		total_losses=EXCLUDED.total_losses,
		total_points=EXCLUDED.total_points,
		win_pct=EXCLUDED.win_pct,
		top_finishes=EXCLUDED.top_finishes,
		earnings=EXCLUDED.earnings,
		updated=EXCLUDED.updated`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range standings {
		args := pgx.NamedArgs{
			"season":      season,
			"rosterID":    s.RosterID,
			"teamName":    s.TeamName,
			"rank":        s.Rank,
			"totalWins":   s.TotalWins,
			"totalLosses": s.TotalLosses,
			"totalPoints": s.TotalPoints,
			"winPct":      s.WinPct,
			"topFinishes": s.TopFinishes,
			"earnings":    s.Earnings,
			"updated":     db.timestamp(),
		}
		_, err := tx.Exec(ctx, upsert, args)
		if err != nil {
			return fmt.Errorf("error upserting overall standing for roster %d: %w", s.RosterID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing overall standings: %w", err)
	}
	return nil
}

func (db *postgresDB) GetOverallStandings(ctx context.Context, season string) ([]model.OverallStanding, error) {
	const query = `SELECT roster_id, team_name, rank, total_wins, total_losses,
						total_points, win_pct, top_finishes, earnings, playoff_pct
					FROM overall_standings
					WHERE season=@season
					ORDER BY rank`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"season": season})
	if err != nil {
		return nil, fmt.Errorf("error querying overall standings: %w", err)
	}

	results := make([]model.OverallStanding, 0, 10)
	for rows.Next() {
		var s model.OverallStanding
		err := rows.Scan(&s.RosterID, &s.TeamName, &s.Rank, &s.TotalWins,
			&s.TotalLosses, &s.TotalPoints, &s.WinPct, &s.TopFinishes,
			&s.Earnings, &s.PlayoffPct)
		if err != nil {
			return nil, fmt.Errorf("error scanning overall standing: %w", err)
		}
		results = append(results, s)
	}

	return results, nil
}

func (db *postgresDB) SavePlayoffOdds(ctx context.Context, season string, odds map[int]float64) error {
	const update = `UPDATE overall_standings
					SET playoff_pct=@playoffPct, updated=@updated
					WHERE season=@season AND roster_id=@rosterID`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for rosterID, pct := range odds {
		args := pgx.NamedArgs{
			"season":     season,
			"rosterID":   rosterID,
			"playoffPct": pct,
			"updated":    db.timestamp(),
		}
		_, err := tx.Exec(ctx, update, args)
		if err != nil {
			return fmt.Errorf("error saving playoff odds for roster %d: %w", rosterID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing playoff odds: %w", err)
	}
	return nil
}

func (db *postgresDB) GetPollingStatus(ctx context.Context) (*model.PollingStatus, error) {
	const query = `SELECT enabled, updated FROM polling_state WHERE id=1`

	var enabled bool
	var updated pgtype.Timestamptz
	err := db.pool.QueryRow(ctx, query).Scan(&enabled, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Never toggled, default to off.
			return &model.PollingStatus{Enabled: false, Status: statusLabel(false)}, nil
		}
		return nil, fmt.Errorf("error reading polling state: %w", err)
	}

	return &model.PollingStatus{
		Enabled:     enabled,
		Status:      statusLabel(enabled),
		LastUpdated: updated.Time,
	}, nil
}

func (db *postgresDB) SetPollingEnabled(ctx context.Context, enabled bool) (*model.PollingStatus, error) {
	const upsert = `INSERT INTO polling_state (id, enabled, updated)
					VALUES (1, @enabled, @updated)
					ON CONFLICT (id) DO UPDATE SET
						enabled=EXCLUDED.enabled,
						updated=EXCLUDED.updated
					RETURNING enabled, updated`

	args := pgx.NamedArgs{
		"enabled": enabled,
		"updated": db.timestamp(),
	}

	var e bool
	var updated pgtype.Timestamptz
	err := db.pool.QueryRow(ctx, upsert, args).Scan(&e, &updated)
	if err != nil {
		return nil, fmt.Errorf("error updating polling state: %w", err)
	}

	return &model.PollingStatus{
		Enabled:     e,
		Status:      statusLabel(e),
		LastUpdated: updated.Time,
	}, nil
}

func statusLabel(enabled bool) string {
	if enabled {
		return "active"
	}
	return "stopped"
}

func (db *postgresDB) timestamp() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}
