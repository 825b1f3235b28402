package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The preferences table holds a single row, the app is single-user.
const prefsRowID = 1

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the stored preferences, or the defaults when none were
// ever saved.
func (r *Repo) Get(ctx context.Context) (_ *Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.prefs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p Preferences
	err = r.db.QueryRow(
		ctx,
		`SELECT experience, unit, goal, weekly_goal, updated_at
			FROM user_preferences
			WHERE id = $1;`,
		prefsRowID,
	).Scan(&p.Experience, &p.Unit, &p.Goal, &p.WeeklyGoal, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	return &p, nil
}

func (r *Repo) Update(ctx context.Context, p *Preferences) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.prefs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_preferences (id, experience, unit, goal, weekly_goal, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE
				SET experience = $2, unit = $3, goal = $4, weekly_goal = $5, updated_at = $6;`,
		prefsRowID, p.Experience, p.Unit, p.Goal, p.WeeklyGoal, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}

	return nil
}
