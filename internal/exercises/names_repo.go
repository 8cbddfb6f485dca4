package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type ExerciseName struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: exercise name empty", ErrValidation)
	}
	return name, nil
}

func scanName(row pgx.Row) (*ExerciseName, error) {
	var n ExerciseName
	var kind string
	if err := row.Scan(&n.ID, &n.Name, &kind); err != nil {
		return nil, err
	}
	n.Kind = Kind(kind)
	return &n, nil
}

func (r *Repo) ListNames(ctx context.Context) (_ []ExerciseName, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.names.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name, kind FROM exercise_name ORDER BY name;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []ExerciseName
	for rows.Next() {
		n, err := scanName(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		names = append(names, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("names.count", len(names)))
	return names, nil
}

func (r *Repo) GetName(ctx context.Context, name string) (_ *ExerciseName, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.names.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))

	return getName(ctx, r.db, name, false)
}

func (r *Repo) AddName(ctx context.Context, name string, kind Kind) (_ *ExerciseName, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.names.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name, err = normalizeName(name)
	if err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown exercise kind [%s]", ErrValidation, kind)
	}
	span.SetAttributes(
		attribute.String("name", name),
		attribute.String("kind", kind.String()),
	)

	added, err := scanName(r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_name (name, kind) VALUES ($1, $2) RETURNING id, name, kind;`,
		name, kind.String(),
	))
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, fmt.Errorf("%w: %s", ErrNameExists, name)
		}
		if pkg.IsCheckViolationError(err) {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		return nil, err
	}

	return added, nil
}

func getName(ctx context.Context, q querier, name string, forUpdate bool) (*ExerciseName, error) {
	query := `SELECT id, name, kind FROM exercise_name WHERE name = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	n, err := scanName(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNameNotFound, name)
		}
		return nil, err
	}
	return n, nil
}

// getOrCreateName returns the existing name or creates it with the given kind.
// An existing name of a different kind is a validation error.
func getOrCreateName(ctx context.Context, q querier, name string, kind Kind) (*ExerciseName, error) {
	created, err := scanName(q.QueryRow(
		ctx,
		`INSERT INTO exercise_name (name, kind) VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
			RETURNING id, name, kind;`,
		name, kind.String(),
	))
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("insert exercise name: %w", err)
	}

	existing, err := getName(ctx, q, name, false)
	if err != nil {
		return nil, err
	}
	if existing.Kind != kind {
		return nil, fmt.Errorf(
			"%w: exercise [%s] is %s, not %s", ErrValidation, name, existing.Kind, kind,
		)
	}

	return existing, nil
}
