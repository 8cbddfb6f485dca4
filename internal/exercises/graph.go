package exercises

import (
	"cmp"
	"maps"
	"slices"
	"time"
)

const graphDayLayout = "2006-01-02"

type GraphDay struct {
	Date string           `json:"date"`
	Sets []WeightedRecord `json:"sets"`
}

type ExerciseGraph struct {
	Name string     `json:"name"`
	Days []GraphDay `json:"days"`
}

// WeightedGraph groups weighted sets by name and UTC day, both ascending.
// Sets within a day keep their chronological order.
func WeightedGraph(sets []WeightedSet) []ExerciseGraph {
	sorted := slices.Clone(sets)
	slices.SortStableFunc(sorted, func(a, b WeightedSet) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	byName := make(map[string]map[string][]WeightedRecord)
	for _, s := range sorted {
		days, ok := byName[s.Name]
		if !ok {
			days = make(map[string][]WeightedRecord)
			byName[s.Name] = days
		}
		day := s.CreatedAt.In(time.UTC).Format(graphDayLayout)
		days[day] = append(days[day], WeightedRecord{
			Weight: s.Weight,
			Reps:   s.Reps,
		})
	}

	graphs := make([]ExerciseGraph, 0, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		days := byName[name]
		graph := ExerciseGraph{
			Name: name,
			Days: make([]GraphDay, 0, len(days)),
		}
		// layout sorts lexicographically in date order
		for _, day := range slices.Sorted(maps.Keys(days)) {
			graph.Days = append(graph.Days, GraphDay{
				Date: day,
				Sets: days[day],
			})
		}
		graphs = append(graphs, graph)
	}

	return graphs
}
