package parser

import (
	"testing"

	"github.com/julianstephens/littleday/internal/models"
)

func TestParseAppointments_VisitorAndDoctor(t *testing.T) {
	appts := ParseAppointments("Friend coming over 2-4pm, doctor appointment at 10am")
	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d: %+v", len(appts), appts)
	}

	assertAppointment(t, appts[0], models.AppointmentVisitor, 840, 960)
	assertAppointment(t, appts[1], models.AppointmentAppointment, 600, 660)
}

func TestParseClause(t *testing.T) {
	tests := []struct {
		name      string
		clause    string
		wantType  models.AppointmentType
		wantStart int
		wantEnd   int
		untimed   bool
		fulfills  models.TaskKind
	}{
		{name: "walk with bare hour", clause: "walk in the park at 11", wantType: models.AppointmentOuting, wantStart: 660, wantEnd: 750, fulfills: models.TaskKindWalk},
		{name: "walk wins over venue", clause: "stroll to the cafe at 9am", wantType: models.AppointmentOuting, wantStart: 540, wantEnd: 630, fulfills: models.TaskKindWalk},
		{name: "library outing", clause: "library story time 10:30am", wantType: models.AppointmentOuting, wantStart: 630, wantEnd: 720},
		{name: "range inherits afternoon", clause: "grandma visiting from 1 until 3", wantType: models.AppointmentVisitor, wantStart: 780, wantEnd: 900},
		{name: "morning range", clause: "swim class 9-10", wantType: models.AppointmentOuting, wantStart: 540, wantEnd: 600},
		{name: "range end bare low hour is pm", clause: "dentist 11 to 1", wantType: models.AppointmentAppointment, wantStart: 660, wantEnd: 780},
		{name: "range with minutes", clause: "checkup from 10am until 11:30", wantType: models.AppointmentAppointment, wantStart: 600, wantEnd: 690},
		{name: "explicit duration", clause: "coffee with Sam at 2:30 for 2 hours", wantType: models.AppointmentOuting, wantStart: 870, wantEnd: 990},
		{name: "explicit minutes", clause: "vaccines 3pm for 30 min", wantType: models.AppointmentAppointment, wantStart: 900, wantEnd: 930},
		{name: "noon", clause: "playdate at noon", wantType: models.AppointmentVisitor, wantStart: 720, wantEnd: 810},
		{name: "no time", clause: "call the plumber", wantType: models.AppointmentOther, untimed: true},
		{name: "walk without time", clause: "going for a walk", wantType: models.AppointmentOuting, untimed: true, fulfills: models.TaskKindWalk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := ParseClause(tt.clause)
			if appt.Description != tt.clause {
				t.Errorf("Description = %q, want %q", appt.Description, tt.clause)
			}
			if appt.FulfillsTask != tt.fulfills {
				t.Errorf("FulfillsTask = %q, want %q", appt.FulfillsTask, tt.fulfills)
			}
			if tt.untimed {
				if appt.Type != tt.wantType {
					t.Errorf("Type = %q, want %q", appt.Type, tt.wantType)
				}
				if appt.StartMinutes != nil || appt.EndMinutes != nil {
					t.Errorf("expected no interval, got %v-%v", deref(appt.StartMinutes), deref(appt.EndMinutes))
				}
				return
			}
			assertAppointment(t, appt, tt.wantType, tt.wantStart, tt.wantEnd)
		})
	}
}

func TestParseAppointments_Splitting(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "whitespace", input: "   ", want: 0},
		{name: "only separators", input: " , ;\n and ", want: 0},
		{name: "and splits", input: "Playdate AND swimming", want: 2},
		{name: "newlines and semicolons", input: "doctor at 9am;\nzoo at 1pm\n\nnap at home", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAppointments(tt.input); len(got) != tt.want {
				t.Errorf("ParseAppointments(%q) returned %d appointments, want %d", tt.input, len(got), tt.want)
			}
		})
	}
}

func TestParseAppointments_OneTypePerClause(t *testing.T) {
	appts := ParseAppointments("Playdate and swimming")
	if appts[0].Type != models.AppointmentVisitor {
		t.Errorf("first clause type = %q, want visitor", appts[0].Type)
	}
	if appts[1].Type != models.AppointmentOuting {
		t.Errorf("second clause type = %q, want outing", appts[1].Type)
	}
}

func assertAppointment(t *testing.T, appt models.Appointment, wantType models.AppointmentType, wantStart, wantEnd int) {
	t.Helper()
	if appt.Type != wantType {
		t.Errorf("%q: Type = %q, want %q", appt.Description, appt.Type, wantType)
	}
	interval, ok := appt.Interval()
	if !ok {
		t.Fatalf("%q: expected an interval", appt.Description)
	}
	if interval.Start != wantStart || interval.End != wantEnd {
		t.Errorf("%q: interval = [%d,%d), want [%d,%d)", appt.Description, interval.Start, interval.End, wantStart, wantEnd)
	}
}

func deref(p *int) int {
	if p == nil {
		return -1
	}
	return *p
}
