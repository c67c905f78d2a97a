package models

type HabitKind string

const (
	HabitKindBuild HabitKind = "build"
	HabitKindBreak HabitKind = "break"
)

// Method is a behavior-change technique attached to a habit. The user picks
// exactly one when starting a plan.
type Method struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Habit is a static catalog entry describing a behavior to build or break.
// Catalog entries are authored content and never change at runtime.
type Habit struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Kind        HabitKind `json:"type" yaml:"type"`
	Description string    `json:"description" yaml:"description"`
	Methods     []Method  `json:"methods" yaml:"methods"`
	Quote       string    `json:"quote,omitempty" yaml:"quote,omitempty"`
}

// IsBreak reports whether the habit is one the user is trying to stop.
// Relapse logging only applies to break habits.
func (h Habit) IsBreak() bool {
	return h.Kind == HabitKindBreak
}
