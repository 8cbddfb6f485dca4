package exercises

import (
	"cmp"
	"maps"
	"math"
	"slices"
)

const maxRecordsPerExercise = 3

type WeightedRecord struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type WeightedPR struct {
	Name    string           `json:"name"`
	Records []WeightedRecord `json:"records"`
}

type BodyweightPR struct {
	Name string `json:"name"`
	Reps []int  `json:"reps"`
}

type PersonalRecords struct {
	Weighted   []WeightedPR   `json:"weighted"`
	Bodyweight []BodyweightPR `json:"bodyweight"`
}

// compareWeights is a total order over float64: NaN sorts below every number,
// and -0 sorts below +0. All NaNs compare equal.
func compareWeights(a, b float64) int {
	if c := cmp.Compare(a, b); c != 0 {
		return c
	}
	// every NaN is the same weight, whatever its sign or payload
	if math.IsNaN(a) {
		return 0
	}
	// equal: order by sign so -0 and +0 stay distinct
	return cmp.Compare(math.Float64bits(b)>>63, math.Float64bits(a)>>63)
}

// compareWeightedRecords orders heavier first, then more reps first.
func compareWeightedRecords(a, b WeightedRecord) int {
	if c := compareWeights(b.Weight, a.Weight); c != 0 {
		return c
	}
	return cmp.Compare(b.Reps, a.Reps)
}

// WeightedRecords computes up to three distinct best (weight, reps) pairs per exercise name.
// Names are returned in alphabetical order.
func WeightedRecords(sets []WeightedSet) []WeightedPR {
	byName := make(map[string][]WeightedRecord)
	for _, s := range sets {
		byName[s.Name] = append(byName[s.Name], WeightedRecord{
			Weight: s.Weight,
			Reps:   s.Reps,
		})
	}

	prs := make([]WeightedPR, 0, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		records := byName[name]
		slices.SortFunc(records, compareWeightedRecords)
		records = slices.CompactFunc(records, func(a, b WeightedRecord) bool {
			return compareWeightedRecords(a, b) == 0
		})
		prs = append(prs, WeightedPR{
			Name:    name,
			Records: slices.Clip(records[:min(len(records), maxRecordsPerExercise)]),
		})
	}

	return prs
}

// BodyweightRecords computes up to three distinct best rep counts per exercise name.
// Names are returned in alphabetical order.
func BodyweightRecords(sets []BodyweightSet) []BodyweightPR {
	byName := make(map[string][]int)
	for _, s := range sets {
		byName[s.Name] = append(byName[s.Name], s.Reps)
	}

	prs := make([]BodyweightPR, 0, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		reps := byName[name]
		slices.SortFunc(reps, func(a, b int) int {
			return cmp.Compare(b, a)
		})
		reps = slices.Compact(reps)
		prs = append(prs, BodyweightPR{
			Name: name,
			Reps: slices.Clip(reps[:min(len(reps), maxRecordsPerExercise)]),
		})
	}

	return prs
}

// BuildPersonalRecords splits the sets by kind and aggregates both.
func BuildPersonalRecords(sets []Set) PersonalRecords {
	var weighted []WeightedSet
	var bodyweight []BodyweightSet
	for _, s := range sets {
		switch v := s.(type) {
		case WeightedSet:
			weighted = append(weighted, v)
		case BodyweightSet:
			bodyweight = append(bodyweight, v)
		}
	}

	return PersonalRecords{
		Weighted:   WeightedRecords(weighted),
		Bodyweight: BodyweightRecords(bodyweight),
	}
}
