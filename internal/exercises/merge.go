package exercises

import (
	"context"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// MergeNames moves every set of toDelete onto toExpand and removes toDelete.
// A missing toExpand is created with toDelete's kind. Both steps share one transaction,
// so a failure leaves no set reassigned. Returns the number of reassigned sets.
func (r *Repo) MergeNames(ctx context.Context, toDelete, toExpand string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.names.merge")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	toDelete, err = normalizeName(toDelete)
	if err != nil {
		return 0, fmt.Errorf("to_delete: %w", err)
	}
	toExpand, err = normalizeName(toExpand)
	if err != nil {
		return 0, fmt.Errorf("to_expand: %w", err)
	}
	if toDelete == toExpand {
		return 0, fmt.Errorf("%w: cannot merge [%s] into itself", ErrValidation, toDelete)
	}
	span.SetAttributes(
		attribute.String("merge.to_delete", toDelete),
		attribute.String("merge.to_expand", toExpand),
	)

	var updated int64
	err = r.inTx(ctx, func(tx pgx.Tx) error {
		source, err := getName(ctx, tx, toDelete, true)
		if err != nil {
			return err
		}

		target, err := getOrCreateName(ctx, tx, toExpand, source.Kind)
		if err != nil {
			return err
		}
		// lock the target too, it may have existed before
		if _, err := getName(ctx, tx, target.Name, true); err != nil {
			return err
		}

		tag, err := tx.Exec(
			ctx,
			`UPDATE exercise_set SET name_id = $1 WHERE name_id = $2;`,
			target.ID, source.ID,
		)
		if err != nil {
			return fmt.Errorf("reassign sets: %w", err)
		}
		updated = tag.RowsAffected()

		if _, err := tx.Exec(ctx, `DELETE FROM exercise_name WHERE id = $1;`, source.ID); err != nil {
			return fmt.Errorf("delete exercise name: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("merge.updated", updated))
	return updated, nil
}
