package bodystats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID int, m Measurement, createdAt time.Time) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodystats.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := m.Validate(); err != nil {
		return nil, err
	}

	entry := Entry{
		UserID:      userID,
		Measurement: m,
		CreatedAt:   createdAt,
	}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO user_info_ts (user_id, height, weight, muscle_mass, body_fat, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		userID, m.Height, m.Weight, m.MuscleMass, m.BodyFat, createdAt,
	).Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("insert measurement: %w", err)
	}

	return &entry, nil
}

// List returns the user's measurements newest first, limit nil means all.
func (r *Repo) List(ctx context.Context, userID int, limit *int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodystats.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit != nil && *limit < 0 {
		return nil, fmt.Errorf("%w: negative limit", ErrValidation)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, height, weight, muscle_mass, body_fat, created_at
			FROM user_info_ts
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Height, &e.Weight, &e.MuscleMass, &e.BodyFat, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return entries, nil
}

// Latest picks the newest non-null value of every column independently.
func (r *Repo) Latest(ctx context.Context, userID int) (_ *Latest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodystats.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`(SELECT 'height', height, created_at FROM user_info_ts
			WHERE user_id = $1 AND height IS NOT NULL ORDER BY created_at DESC, id DESC LIMIT 1)
		UNION ALL
		(SELECT 'weight', weight, created_at FROM user_info_ts
			WHERE user_id = $1 AND weight IS NOT NULL ORDER BY created_at DESC, id DESC LIMIT 1)
		UNION ALL
		(SELECT 'muscle_mass', muscle_mass, created_at FROM user_info_ts
			WHERE user_id = $1 AND muscle_mass IS NOT NULL ORDER BY created_at DESC, id DESC LIMIT 1)
		UNION ALL
		(SELECT 'body_fat', body_fat, created_at FROM user_info_ts
			WHERE user_id = $1 AND body_fat IS NOT NULL ORDER BY created_at DESC, id DESC LIMIT 1);`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	latest := &Latest{}
	for rows.Next() {
		var column string
		var v LatestValue
		if err := rows.Scan(&column, &v.Value, &v.RecordedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		switch column {
		case "height":
			latest.Height = &v
		case "weight":
			latest.Weight = &v
		case "muscle_mass":
			latest.MuscleMass = &v
		case "body_fat":
			latest.BodyFat = &v
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return latest, nil
}
