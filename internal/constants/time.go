package constants

// All schedule arithmetic is done in minutes since midnight.
const (
	MinutesPerDay = 1440

	// DayEndMinutes is the 17:30 boundary after which no flexible item may end.
	// Older notes give this as minute 1110, which is 18:30; 17:30 is the rule.
	DayEndMinutes = 17*60 + 30

	// EarliestStartMinutes is the lower bound of every placement search (07:00).
	EarliestStartMinutes = 7 * 60

	// SlotStepMinutes is the granularity of the placement search.
	SlotStepMinutes = 15

	// FoodVenueCutoffMinutes is the latest end time (15:00) for cafe/meal outings.
	FoodVenueCutoffMinutes = 15 * 60

	// Part-of-day thresholds
	MiddayStartMinutes    = 12 * 60
	AfternoonStartMinutes = 14 * 60
	EveningStartMinutes   = 17 * 60

	FeedDurationMin = 30

	// Assumed spans for appointments with only a start time
	AppointmentSpanMin = 60
	OutingSpanMin      = 90

	BonusActivityCount = 3
)

// DefaultNapTimes are the preferred nap starts; naps beyond the second reuse the last entry.
var DefaultNapTimes = []int{9*60 + 30, 13 * 60}

// DefaultBonusSlotTimes are the preferred starts for the bonus activities, in selection order.
var DefaultBonusSlotTimes = []int{10 * 60, 14 * 60, 16 * 60}
