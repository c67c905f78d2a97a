// Package catalog holds the static habit content: the habits users can pick
// from and the methods attached to each. The content is authored in an
// embedded YAML file and is read-only at runtime.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/calebmarsh/tend/internal/models"
)

//go:embed habits.yaml
var habitsYAML []byte

type catalogFile struct {
	Build []models.Habit `yaml:"build"`
	Break []models.Habit `yaml:"break"`
}

var (
	buildHabits []models.Habit
	breakHabits []models.Habit
	byID        map[string]models.Habit
)

func init() {
	var f catalogFile
	if err := yaml.Unmarshal(habitsYAML, &f); err != nil {
		panic(fmt.Sprintf("catalog: invalid embedded habits.yaml: %v", err))
	}

	buildHabits = f.Build
	breakHabits = f.Break

	byID = make(map[string]models.Habit, len(buildHabits)+len(breakHabits))
	for _, h := range All() {
		if _, dup := byID[h.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate habit id %q", h.ID))
		}
		byID[h.ID] = h
	}
}

// All returns every habit in the catalog, build habits first.
func All() []models.Habit {
	all := make([]models.Habit, 0, len(buildHabits)+len(breakHabits))
	all = append(all, buildHabits...)
	all = append(all, breakHabits...)
	return all
}

// Build returns the habits users want to start doing.
func Build() []models.Habit {
	return buildHabits
}

// Break returns the habits users want to stop doing.
func Break() []models.Habit {
	return breakHabits
}

// Get looks up a habit by ID. Unknown IDs are not an error; callers decide
// how to react to a missing habit.
func Get(id string) (models.Habit, bool) {
	h, ok := byID[id]
	return h, ok
}
