package exercises

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserNotFound = fmt.Errorf("%w: user does not exist", ErrValidation)

type NewSet struct {
	UserID    int
	Name      string
	Kind      Kind
	Reps      int
	Weight    *float64
	CreatedAt time.Time
}

func (s NewSet) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("%w: unknown exercise kind [%s]", ErrValidation, s.Kind)
	}
	if s.Reps <= 0 {
		return fmt.Errorf("%w: reps must be positive", ErrValidation)
	}

	switch s.Kind {
	case KindWeighted:
		if s.Weight == nil {
			return fmt.Errorf("%w: weighted set needs a weight", ErrValidation)
		}
		if math.IsNaN(*s.Weight) || math.IsInf(*s.Weight, 0) || *s.Weight < 0 {
			return fmt.Errorf("%w: invalid weight %v", ErrValidation, *s.Weight)
		}
	case KindBodyweight:
		if s.Weight != nil {
			return fmt.Errorf("%w: bodyweight set cannot have a weight", ErrValidation)
		}
	}

	return nil
}

// AddSet stores the set, creating the exercise name with the set's kind if needed.
func (r *Repo) AddSet(ctx context.Context, ns NewSet) (_ Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.sets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ns.Name, err = normalizeName(ns.Name)
	if err != nil {
		return nil, err
	}
	if err := ns.Validate(); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("user.id", ns.UserID),
		attribute.String("name", ns.Name),
		attribute.String("kind", ns.Kind.String()),
	)

	record := ExerciseSetRecord{
		UserID:       ns.UserID,
		ExerciseName: ns.Name,
		Kind:         ns.Kind,
		Reps:         &ns.Reps,
		Weight:       ns.Weight,
		CreatedAt:    ns.CreatedAt,
	}

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		name, err := getOrCreateName(ctx, tx, ns.Name, ns.Kind)
		if err != nil {
			return err
		}

		return tx.QueryRow(
			ctx,
			`INSERT INTO exercise_set (user_id, name_id, reps, weight, created_at)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id;`,
			ns.UserID, name.ID, ns.Reps, ns.Weight, ns.CreatedAt,
		).Scan(&record.ID)
	})
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: %d", ErrUserNotFound, ns.UserID)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("set.id", record.ID))
	return record.ToSet()
}

func (r *Repo) DeleteSet(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("set.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise_set WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

// History returns the user's sets, most recent first. A nil limit returns all of them.
func (r *Repo) History(ctx context.Context, userID int, limit *int) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.sets.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if limit != nil {
		if *limit < 0 {
			return nil, fmt.Errorf("%w: negative limit %d", ErrValidation, *limit)
		}
		span.SetAttributes(attribute.Int("limit", *limit))
	}

	records, err := r.setRecords(ctx, userID, nil, limit)
	if err != nil {
		return nil, err
	}

	return ToSets(records)
}

func (r *Repo) PersonalRecords(ctx context.Context, userID int) (_ *PersonalRecords, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.sets.prs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	records, err := r.setRecords(ctx, userID, nil, nil)
	if err != nil {
		return nil, err
	}
	sets, err := ToSets(records)
	if err != nil {
		return nil, err
	}

	prs := BuildPersonalRecords(sets)
	return &prs, nil
}

func (r *Repo) WeightedGraph(ctx context.Context, userID int) (_ []ExerciseGraph, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.sets.graph")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	weighted := KindWeighted
	records, err := r.setRecords(ctx, userID, &weighted, nil)
	if err != nil {
		return nil, err
	}

	sets := make([]WeightedSet, 0, len(records))
	for _, rec := range records {
		s, err := rec.ToSet()
		if err != nil {
			return nil, err
		}
		sets = append(sets, s.(WeightedSet))
	}

	return WeightedGraph(sets), nil
}

func (r *Repo) setRecords(ctx context.Context, userID int, kind *Kind, limit *int) ([]ExerciseSetRecord, error) {
	var kindFilter *string
	if kind != nil {
		k := kind.String()
		kindFilter = &k
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT s.id, s.user_id, n.name, n.kind, s.reps, s.weight, s.created_at
			FROM exercise_set s
			JOIN exercise_name n ON n.id = s.name_id
			WHERE s.user_id = $1 AND ($2::varchar IS NULL OR n.kind = $2::varchar)
			ORDER BY s.created_at DESC, s.id DESC
			LIMIT $3;`,
		userID, kindFilter, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ExerciseSetRecord
	for rows.Next() {
		var rec ExerciseSetRecord
		var recKind string
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.ExerciseName, &recKind,
			&rec.Reps, &rec.Weight, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rec.Kind = Kind(recKind)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
