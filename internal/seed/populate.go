package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymtracker/internal/exercises"
	"github.com/2beens/gymtracker/internal/users"

	log "github.com/sirupsen/logrus"
)

type exercisesStore interface {
	AddName(ctx context.Context, name string, kind exercises.Kind) (*exercises.ExerciseName, error)
	AddSet(ctx context.Context, ns exercises.NewSet) (exercises.Set, error)
}

type usersStore interface {
	GetByUsername(ctx context.Context, username string) (*users.User, error)
	Register(ctx context.Context, params users.RegisterParams) (*users.User, error)
}

type Superuser struct {
	Username string
	Email    string
	Password string
}

type PopulateResult struct {
	NamesAdded       int
	NamesSkipped     int
	SuperuserCreated bool
}

type Populator struct {
	exercises exercisesStore
	users     usersStore
}

func NewPopulator(exercises exercisesStore, users usersStore) *Populator {
	return &Populator{
		exercises: exercises,
		users:     users,
	}
}

// Populate inserts the names that are not there yet and creates the superuser if absent.
// Running it twice changes nothing.
func (p *Populator) Populate(ctx context.Context, names []NameSpec, superuser *Superuser) (PopulateResult, error) {
	var result PopulateResult
	for _, n := range names {
		if _, err := p.exercises.AddName(ctx, n.Name, n.Kind); err != nil {
			if errors.Is(err, exercises.ErrNameExists) {
				result.NamesSkipped++
				continue
			}
			return result, fmt.Errorf("add name [%s]: %w", n.Name, err)
		}
		result.NamesAdded++
	}
	log.Debugf("populate: %d names added, %d already present", result.NamesAdded, result.NamesSkipped)

	if superuser == nil {
		return result, nil
	}

	_, err := p.users.GetByUsername(ctx, superuser.Username)
	if err == nil {
		log.Debugf("populate: superuser %s already exists", superuser.Username)
		return result, nil
	}
	if !errors.Is(err, users.ErrUserNotFound) {
		return result, fmt.Errorf("get superuser: %w", err)
	}

	email := superuser.Email
	if email == "" {
		email = superuser.Username + "@gymtracker.local"
	}
	if _, err := p.users.Register(ctx, users.RegisterParams{
		Username:    superuser.Username,
		Email:       email,
		Password:    superuser.Password,
		DisplayName: superuser.Username,
		IsSuperuser: true,
	}); err != nil {
		return result, fmt.Errorf("create superuser: %w", err)
	}
	result.SuperuserCreated = true

	return result, nil
}

// AddSets stores the given sets one by one, returning how many made it.
func (p *Populator) AddSets(ctx context.Context, sets []exercises.NewSet) (int, error) {
	for i, s := range sets {
		if _, err := p.exercises.AddSet(ctx, s); err != nil {
			return i, fmt.Errorf("add set %d [%s]: %w", i, s.Name, err)
		}
	}
	return len(sets), nil
}
