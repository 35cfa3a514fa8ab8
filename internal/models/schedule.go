package models

type ItemType string

const (
	ItemFeeding   ItemType = "feeding"
	ItemNap       ItemType = "nap"
	ItemRecurring ItemType = "recurring"
	ItemBonus     ItemType = "bonus"
)

type TimeBlock string

const (
	TimeBlockMorning   TimeBlock = "morning"
	TimeBlockMidday    TimeBlock = "midday"
	TimeBlockAfternoon TimeBlock = "afternoon"
	TimeBlockEvening   TimeBlock = "evening"
)

// ScheduledItem is one entry of a generated day. SuggestedTime is empty for
// items that have no time (a recurring task fulfilled by an untimed appointment).
type ScheduledItem struct {
	ID              string    `json:"id"`
	Task            string    `json:"task"`
	Type            ItemType  `json:"type"`
	TimeBlock       TimeBlock `json:"time_block"`
	SuggestedTime   string    `json:"suggested_time,omitempty"` // "H:MM AM/PM"
	StartMinutes    int       `json:"start_minutes"`
	DurationMinutes int       `json:"duration_minutes"`
	Kind            TaskKind  `json:"kind,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Activity        *Activity `json:"activity,omitempty"`
	SocialActivity  bool      `json:"social_activity,omitempty"`
	CanOverlap      bool      `json:"can_overlap,omitempty"`
	Overlap         bool      `json:"overlap,omitempty"` // no free slot was found; placed at the preferred time
	Completed       bool      `json:"completed,omitempty"`
}

// HasTime reports whether the item has a suggested time.
func (i ScheduledItem) HasTime() bool {
	return i.SuggestedTime != ""
}

// Interval returns the item's occupied range. Untimed items report false.
func (i ScheduledItem) Interval() (Interval, bool) {
	if !i.HasTime() || i.DurationMinutes <= 0 {
		return Interval{}, false
	}
	return Interval{Start: i.StartMinutes, End: i.StartMinutes + i.DurationMinutes}, true
}

// SortMinutes is the key used to order items; untimed items sort at midnight.
func (i ScheduledItem) SortMinutes() int {
	if !i.HasTime() {
		return 0
	}
	return i.StartMinutes
}
