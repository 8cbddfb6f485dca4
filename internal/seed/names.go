package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/2beens/gymtracker/internal/exercises"

	"gopkg.in/yaml.v3"
)

type NameSpec struct {
	Name string         `yaml:"name"`
	Kind exercises.Kind `yaml:"kind"`
}

type namesFile struct {
	Names []NameSpec `yaml:"names"`
}

// DefaultNames is the catalogue a fresh installation starts with.
var DefaultNames = []NameSpec{
	{Name: "Bench Press", Kind: exercises.KindWeighted},
	{Name: "Deadlift", Kind: exercises.KindWeighted},
	{Name: "Squat", Kind: exercises.KindWeighted},
	{Name: "Leg Extension", Kind: exercises.KindWeighted},
	{Name: "Cable Rows", Kind: exercises.KindWeighted},
	{Name: "ベンチプレス", Kind: exercises.KindWeighted},
	{Name: "デッドリフト", Kind: exercises.KindWeighted},
	{Name: "スクワット", Kind: exercises.KindWeighted},
}

// LoadNames reads a names catalogue in the form:
//
//	names:
//	  - name: Pull-up
//	    kind: bodyweight
//
// A missing kind defaults to weighted.
func LoadNames(path string) ([]NameSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read names file: %w", err)
	}

	var f namesFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parse names file: %w", err)
	}

	for i, n := range f.Names {
		f.Names[i].Name = strings.TrimSpace(n.Name)
		if f.Names[i].Name == "" {
			return nil, fmt.Errorf("names file entry %d: empty name", i)
		}
		if n.Kind == "" {
			f.Names[i].Kind = exercises.KindWeighted
			continue
		}
		kind, err := exercises.ParseKind(string(n.Kind))
		if err != nil {
			return nil, fmt.Errorf("names file entry %d [%s]: %w", i, n.Name, err)
		}
		f.Names[i].Kind = kind
	}

	return f.Names, nil
}
