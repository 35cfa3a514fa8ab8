package models

// Interval is a half-open range of minutes since midnight, [Start, End).
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Duration returns the length of the interval in minutes.
func (i Interval) Duration() int {
	return i.End - i.Start
}

// Overlaps reports whether the two half-open intervals share any minute.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}
