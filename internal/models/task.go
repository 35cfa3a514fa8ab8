package models

import "strings"

// TaskKind identifies a recurring task independently of the label shown to
// the user, so renaming "Going for a walk" cannot break its defaults.
type TaskKind string

const (
	TaskKindWalk      TaskKind = "walk"
	TaskKindBath      TaskKind = "bath"
	TaskKindTummyTime TaskKind = "tummy_time"
	TaskKindReading   TaskKind = "reading"
	TaskKindPlaytime  TaskKind = "playtime"
	TaskKindCustom    TaskKind = "custom"
)

// TaskDefaults holds the scheduling defaults for a task kind.
type TaskDefaults struct {
	Label           string
	PreferredStart  int // minutes since midnight
	DurationMin     int
	Social          bool
	IgnoresBoundary bool // placed at PreferredStart regardless of conflicts or day end
}

var taskTable = map[TaskKind]TaskDefaults{
	TaskKindWalk:      {Label: "Going for a walk", PreferredStart: 10*60 + 30, DurationMin: 30},
	TaskKindBath:      {Label: "Having a bath", PreferredStart: 18 * 60, DurationMin: 20, IgnoresBoundary: true},
	TaskKindTummyTime: {Label: "Tummy time", PreferredStart: 9 * 60, DurationMin: 15},
	TaskKindReading:   {Label: "Reading together", PreferredStart: 16 * 60, DurationMin: 15, Social: true},
	TaskKindPlaytime:  {Label: "Playtime", PreferredStart: 15 * 60, DurationMin: 30, Social: true},
	TaskKindCustom:    {Label: "Custom task", PreferredStart: 11 * 60, DurationMin: 30},
}

// Defaults returns the scheduling defaults for the kind. Unknown kinds get
// the custom defaults.
func (k TaskKind) Defaults() TaskDefaults {
	if d, ok := taskTable[k]; ok {
		return d
	}
	return taskTable[TaskKindCustom]
}

// DefaultLabel returns the human-facing name used when none is configured.
func (k TaskKind) DefaultLabel() string {
	return k.Defaults().Label
}

// RecurringTask is a user-configured daily task.
type RecurringTask struct {
	Kind  TaskKind `json:"kind"`
	Label string   `json:"label"`
}

// DisplayLabel returns the configured label, falling back to the kind's default.
func (t RecurringTask) DisplayLabel() string {
	if strings.TrimSpace(t.Label) != "" {
		return t.Label
	}
	return t.Kind.DefaultLabel()
}

// ParseRecurringTask resolves a configuration entry. Accepted forms are a
// kind key ("bath"), a default label ("Having a bath"), or "kind:label"
// ("walk:Stroll to the pond"). Anything else becomes a custom task.
func ParseRecurringTask(s string) RecurringTask {
	s = strings.TrimSpace(s)
	if kind, label, found := strings.Cut(s, ":"); found {
		k := TaskKind(strings.ToLower(strings.TrimSpace(kind)))
		if _, ok := taskTable[k]; ok {
			return RecurringTask{Kind: k, Label: strings.TrimSpace(label)}
		}
	}

	lower := strings.ToLower(s)
	for kind, d := range taskTable {
		if kind == TaskKindCustom {
			continue
		}
		if lower == string(kind) || lower == strings.ToLower(d.Label) {
			return RecurringTask{Kind: kind, Label: d.Label}
		}
	}
	return RecurringTask{Kind: TaskKindCustom, Label: s}
}

// String formats the task in the form accepted by ParseRecurringTask.
func (t RecurringTask) String() string {
	if t.Kind == TaskKindCustom {
		return t.DisplayLabel()
	}
	return string(t.Kind) + ":" + t.DisplayLabel()
}
