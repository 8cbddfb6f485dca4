package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create stores the user and its info row in a single transaction.
func (r *Repo) Create(ctx context.Context, nu NewUser) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", nu.Username))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	user := User{
		Username:    nu.Username,
		Email:       nu.Email,
		IsSuperuser: nu.IsSuperuser,
		CreatedAt:   nu.CreatedAt,
	}
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO users (username, email, pw_hash, is_superuser, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		nu.Username, nu.Email, nu.PasswordHash, nu.IsSuperuser, nu.CreatedAt,
	).Scan(&user.ID); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, fmt.Errorf("%w: %s", ErrUserExists, nu.Username)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO user_info (user_id, display_name) VALUES ($1, $2);`,
		user.ID, nu.DisplayName,
	); err != nil {
		return nil, fmt.Errorf("insert user info: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &user, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var u User
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, username, email, pw_hash, is_superuser, created_at FROM users WHERE username = $1;`,
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsSuperuser, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
		}
		return nil, err
	}

	return &u, nil
}

func (r *Repo) UpdatePassword(ctx context.Context, username, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updatePassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET pw_hash = $1 WHERE username = $2;`,
		passwordHash, username,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}

	return nil
}

func (r *Repo) GetInfo(ctx context.Context, userID int) (_ *Info, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getInfo")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var info Info
	if err := r.db.QueryRow(
		ctx,
		`SELECT u.id, u.username, u.email, i.display_name
			FROM users u
			JOIN user_info i ON i.user_id = u.id
			WHERE u.id = $1;`,
		userID,
	).Scan(&info.UserID, &info.Username, &info.Email, &info.DisplayName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
		}
		return nil, err
	}

	return &info, nil
}

func (r *Repo) UpdateDisplayName(ctx context.Context, userID int, displayName string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateDisplayName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_info SET display_name = $1 WHERE user_id = $2;`,
		displayName, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", ErrUserNotFound, userID)
	}

	return nil
}
