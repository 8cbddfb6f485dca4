package seed

import (
	"math"
	"slices"
	"time"

	"github.com/2beens/gymtracker/internal/exercises"

	"github.com/brianvoe/gofakeit/v6"
)

// DemoSets generates n plausible sets for userID, spread between from and to,
// sorted by time.
func DemoSets(faker *gofakeit.Faker, userID int, names []NameSpec, n int, from, to time.Time) []exercises.NewSet {
	if len(names) == 0 || n <= 0 {
		return nil
	}

	sets := make([]exercises.NewSet, 0, n)
	for i := 0; i < n; i++ {
		name := names[faker.Number(0, len(names)-1)]
		ns := exercises.NewSet{
			UserID:    userID,
			Name:      name.Name,
			Kind:      name.Kind,
			CreatedAt: faker.DateRange(from, to),
		}

		switch name.Kind {
		case exercises.KindBodyweight:
			ns.Reps = faker.Number(3, 20)
		default:
			ns.Reps = faker.Number(1, 12)
			// plates come in 2.5 kg steps
			weight := math.Round(faker.Float64Range(20, 180)/2.5) * 2.5
			ns.Weight = &weight
		}
		sets = append(sets, ns)
	}

	slices.SortFunc(sets, func(a, b exercises.NewSet) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return sets
}
