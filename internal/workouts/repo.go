package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("session not found")

type ListParams struct {
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session *Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJson, err := json.Marshal(session.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal session exercises: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_session
				(started_at, finished_at, mood, exercises)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		session.StartedAt, session.FinishedAt, session.Mood, exercisesJson,
	)
	if err != nil {
		return nil, fmt.Errorf("insert workout session: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.New("unexpected error, failed to insert workout session")
	}
	if err := rows.Scan(&session.ID); err != nil {
		return nil, fmt.Errorf("scan session id: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return session, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		session       Session
		exercisesJson []byte
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT id, started_at, finished_at, mood, exercises
			FROM workout_session
			WHERE id = $1;`,
		id,
	).Scan(&session.ID, &session.StartedAt, &session.FinishedAt, &session.Mood, &exercisesJson)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get workout session: %w", err)
	}

	if err := json.Unmarshal(exercisesJson, &session.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal session exercises: %w", err)
	}

	return &session, nil
}

// Finish marks a session as completed and stores the optional mood.
func (r *Repo) Finish(ctx context.Context, id int, finishedAt time.Time, mood *int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session
			SET finished_at = $1, mood = $2
			WHERE id = $3;`,
		finishedAt, mood, id,
	)
	if err != nil {
		return fmt.Errorf("finish workout session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// ListAll returns the full session history, most recent first.
func (r *Repo) ListAll(ctx context.Context) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, started_at, finished_at, mood, exercises
			FROM workout_session
			ORDER BY started_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("list workout sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// List returns one page of session history, most recent first, plus the
// total session count.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(
		ctx, `SELECT COUNT(*) FROM workout_session;`,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count workout sessions: %w", err)
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	rows, err := r.db.Query(
		ctx,
		`SELECT id, started_at, finished_at, mood, exercises
			FROM workout_session
			ORDER BY started_at DESC
			LIMIT $1 OFFSET $2;`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list workout sessions page: %w", err)
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

func scanSessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var (
			session       Session
			exercisesJson []byte
		)
		if err := rows.Scan(
			&session.ID, &session.StartedAt, &session.FinishedAt,
			&session.Mood, &exercisesJson,
		); err != nil {
			return nil, fmt.Errorf("scan workout session: %w", err)
		}
		if err := json.Unmarshal(exercisesJson, &session.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal session exercises: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}
