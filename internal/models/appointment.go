package models

type AppointmentType string

const (
	AppointmentOuting      AppointmentType = "outing"
	AppointmentVisitor     AppointmentType = "visitor"
	AppointmentAppointment AppointmentType = "appointment"
	AppointmentOther       AppointmentType = "other"
)

// Appointment is one clause of the survey's free-text appointments field.
// StartMinutes and EndMinutes are both nil when no time could be extracted.
type Appointment struct {
	Description  string          `json:"description"`
	Type         AppointmentType `json:"type"`
	StartMinutes *int            `json:"start_minutes,omitempty"`
	EndMinutes   *int            `json:"end_minutes,omitempty"`
	FulfillsTask TaskKind        `json:"fulfills_task,omitempty"`
}

// Interval returns the appointment's time range, if it has one.
func (a Appointment) Interval() (Interval, bool) {
	if a.StartMinutes == nil || a.EndMinutes == nil || *a.EndMinutes <= *a.StartMinutes {
		return Interval{}, false
	}
	return Interval{Start: *a.StartMinutes, End: *a.EndMinutes}, true
}

// HasTime reports whether the appointment carries a usable interval.
func (a Appointment) HasTime() bool {
	_, ok := a.Interval()
	return ok
}
