package bodystats

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrValidation = errors.New("validation failed")
)

// Measurement is a body composition snapshot, every field is optional.
type Measurement struct {
	Height     *float64 `json:"height"`
	Weight     *float64 `json:"weight"`
	MuscleMass *float64 `json:"muscleMass"`
	BodyFat    *float64 `json:"bodyFat"`
}

func (m Measurement) Validate() error {
	fields := []struct {
		name  string
		value *float64
	}{
		{"height", m.Height},
		{"weight", m.Weight},
		{"muscleMass", m.MuscleMass},
		{"bodyFat", m.BodyFat},
	}

	set := 0
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		set++
		v := *f.value
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s must be a finite non-negative number", ErrValidation, f.name)
		}
	}
	if set == 0 {
		return fmt.Errorf("%w: no measurement given", ErrValidation)
	}

	return nil
}

type Entry struct {
	ID     int `json:"id"`
	UserID int `json:"userId"`
	Measurement
	CreatedAt time.Time `json:"createdAt"`
}

type LatestValue struct {
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Latest holds the most recent recorded value per column.
// A column never recorded stays nil.
type Latest struct {
	Height     *LatestValue `json:"height"`
	Weight     *LatestValue `json:"weight"`
	MuscleMass *LatestValue `json:"muscleMass"`
	BodyFat    *LatestValue `json:"bodyFat"`
}
