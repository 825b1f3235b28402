package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exercise Exercise
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, category, muscle_groups, created_at
			FROM exercise_type
			WHERE id = $1;`,
		id,
	).Scan(
		&exercise.ID, &exercise.Name, &exercise.Category,
		&exercise.MuscleGroups, &exercise.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise type: %w", err)
	}

	return &exercise, nil
}

func (r *Repo) ListAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, category, muscle_groups, created_at
			FROM exercise_type
			ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("list exercise types: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(
			&exercise.ID, &exercise.Name, &exercise.Category,
			&exercise.MuscleGroups, &exercise.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan exercise type: %w", err)
		}
		exercises = append(exercises, exercise)
	}

	return exercises, rows.Err()
}
