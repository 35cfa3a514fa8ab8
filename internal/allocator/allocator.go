// Package allocator tracks the occupied time of a single day and finds free
// slots for new items. A DaySchedule belongs to one generation run and is
// not safe for concurrent use.
package allocator

import (
	"sort"

	"github.com/julianstephens/littleday/internal/constants"
	"github.com/julianstephens/littleday/internal/models"
)

type DaySchedule struct {
	occupied []models.Interval
	boundary int // latest allowed end, minutes since midnight
	earliest int // earliest allowed start for searched placements
	step     int
}

// Option configures a DaySchedule.
type Option func(*DaySchedule)

// WithBoundary overrides the day-end boundary.
func WithBoundary(minutes int) Option {
	return func(d *DaySchedule) {
		d.boundary = minutes
	}
}

// WithEarliest overrides the earliest start considered by backward searches.
func WithEarliest(minutes int) Option {
	return func(d *DaySchedule) {
		d.earliest = minutes
	}
}

func New(opts ...Option) *DaySchedule {
	d := &DaySchedule{
		boundary: constants.DayEndMinutes,
		earliest: constants.EarliestStartMinutes,
		step:     constants.SlotStepMinutes,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Boundary returns the day-end boundary in minutes.
func (d *DaySchedule) Boundary() int {
	return d.boundary
}

// Occupy registers [start, start+duration) as taken. Empty or negative
// durations are ignored and the end is clamped to the last minute of the day.
func (d *DaySchedule) Occupy(start, duration int) {
	end := start + duration
	if end > constants.MinutesPerDay-1 {
		end = constants.MinutesPerDay - 1
	}
	if start < 0 || end <= start {
		return
	}
	d.occupied = append(d.occupied, models.Interval{Start: start, End: end})
}

// OccupyInterval registers an existing interval.
func (d *DaySchedule) OccupyInterval(iv models.Interval) {
	d.Occupy(iv.Start, iv.Duration())
}

// Occupied returns a sorted copy of the occupied intervals.
func (d *DaySchedule) Occupied() []models.Interval {
	out := make([]models.Interval, len(d.occupied))
	copy(out, d.occupied)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

// IsFree reports whether [start, end) ends by the boundary and overlaps no
// occupied interval. Occupied intervals equal to one of ignore are skipped,
// which lets an item be placed inside the appointment it belongs to.
func (d *DaySchedule) IsFree(start, end int, ignore ...models.Interval) bool {
	if end > d.boundary {
		return false
	}
	candidate := models.Interval{Start: start, End: end}
	for _, iv := range d.occupied {
		if isIgnored(iv, ignore) {
			continue
		}
		if candidate.Overlaps(iv) {
			return false
		}
	}
	return true
}

func isIgnored(iv models.Interval, ignore []models.Interval) bool {
	for _, other := range ignore {
		if iv == other {
			return true
		}
	}
	return false
}

// PlaceNear finds the free start closest to preferred in the search order:
// backward from the boundary when preferred would run past it, otherwise
// preferred itself, then forward, then backward. When nothing is free it
// returns preferred and false; the caller may still occupy that slot.
func (d *DaySchedule) PlaceNear(preferred, duration int, ignore ...models.Interval) (int, bool) {
	return d.PlaceNearBefore(preferred, duration, d.boundary, ignore...)
}

// PlaceNearBefore is PlaceNear with an earlier end limit for this one
// placement. A limit past the day-end boundary is clamped to it.
func (d *DaySchedule) PlaceNearBefore(preferred, duration, limit int, ignore ...models.Interval) (int, bool) {
	limit = min(limit, d.boundary)
	fits := func(s int) bool {
		return s+duration <= limit && d.IsFree(s, s+duration, ignore...)
	}

	if preferred+duration > limit {
		for s := limit - duration; s >= d.earliest; s -= d.step {
			if fits(s) {
				return s, true
			}
		}
		return preferred, false
	}

	if fits(preferred) {
		return preferred, true
	}

	for s := preferred + d.step; s <= limit-duration; s += d.step {
		if fits(s) {
			return s, true
		}
	}

	for s := preferred - d.step; s >= d.earliest; s -= d.step {
		if fits(s) {
			return s, true
		}
	}

	return preferred, false
}
