package exercises

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExerciseSetRecord is a set row joined with its exercise name.
// Reps and Weight are nullable so the conversion to a Set can validate them.
type ExerciseSetRecord struct {
	ID           int
	UserID       int
	ExerciseName string
	Kind         Kind
	Reps         *int
	Weight       *float64
	CreatedAt    time.Time
}

// Set is either a WeightedSet or a BodyweightSet.
type Set interface {
	SetKind() Kind
	Timestamp() time.Time
	isSet()
}

type WeightedSet struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	CreatedAt time.Time `json:"createdAt"`
}

type BodyweightSet struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	Reps      int       `json:"reps"`
	CreatedAt time.Time `json:"createdAt"`
}

func (WeightedSet) SetKind() Kind          { return KindWeighted }
func (s WeightedSet) Timestamp() time.Time { return s.CreatedAt }
func (WeightedSet) isSet()                 {}

func (BodyweightSet) SetKind() Kind          { return KindBodyweight }
func (s BodyweightSet) Timestamp() time.Time { return s.CreatedAt }
func (BodyweightSet) isSet()                 {}

func (s WeightedSet) MarshalJSON() ([]byte, error) {
	type alias WeightedSet
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{
		Kind:  KindWeighted,
		alias: alias(s),
	})
}

func (s BodyweightSet) MarshalJSON() ([]byte, error) {
	type alias BodyweightSet
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{
		Kind:  KindBodyweight,
		alias: alias(s),
	})
}

// ToSet converts the joined row into its kind specific variant.
// Missing kind-required fields produce ErrMalformedRow.
func (r ExerciseSetRecord) ToSet() (Set, error) {
	if r.Reps == nil {
		return nil, fmt.Errorf("%w: set %d [%s] has no reps", ErrMalformedRow, r.ID, r.ExerciseName)
	}

	switch r.Kind {
	case KindWeighted:
		if r.Weight == nil {
			return nil, fmt.Errorf("%w: weighted set %d [%s] has no weight", ErrMalformedRow, r.ID, r.ExerciseName)
		}
		return WeightedSet{
			ID:        r.ID,
			UserID:    r.UserID,
			Name:      r.ExerciseName,
			Weight:    *r.Weight,
			Reps:      *r.Reps,
			CreatedAt: r.CreatedAt,
		}, nil
	case KindBodyweight:
		return BodyweightSet{
			ID:        r.ID,
			UserID:    r.UserID,
			Name:      r.ExerciseName,
			Reps:      *r.Reps,
			CreatedAt: r.CreatedAt,
		}, nil
	default:
		return nil, fmt.Errorf("%w: set %d has unknown kind [%s]", ErrMalformedRow, r.ID, r.Kind)
	}
}

// ToSets converts all rows, failing on the first malformed one.
func ToSets(records []ExerciseSetRecord) ([]Set, error) {
	sets := make([]Set, 0, len(records))
	for _, rec := range records {
		s, err := rec.ToSet()
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}
