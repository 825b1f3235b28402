package bodyweight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"
	"github.com/DustinBergman/workout-app-sub002/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrEntryExists - weight_entry has a unique index on the entry date,
// one measurement per day
var ErrEntryExists = errors.New("weight entry for that day exists")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry *Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO weight_entry (date, weight, unit)
				VALUES ($1, $2, $3)
			RETURNING id;`,
		entry.Date, entry.Weight, entry.Unit,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEntryExists
		}
		return nil, fmt.Errorf("insert weight entry: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.New("unexpected error, failed to insert weight entry")
	}
	if err := rows.Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("scan weight entry id: %w", err)
	}

	return entry, nil
}

// ListSince returns all entries measured at or after the given time,
// most recent first.
func (r *Repo) ListSince(ctx context.Context, from time.Time) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.listSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, weight, unit
			FROM weight_entry
			WHERE date >= $1
			ORDER BY date DESC;`,
		from,
	)
	if err != nil {
		return nil, fmt.Errorf("list weight entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Weight, &entry.Unit); err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
