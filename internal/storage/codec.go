package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/littleday/internal/models"
)

// PlanColumns is the JSON encoding of a plan's structured fields, shared by
// the SQL backends.
type PlanColumns struct {
	Survey       []byte
	Weather      []byte
	Appointments []byte
	Items        []byte
}

// EncodePlan marshals the structured parts of plan.
func EncodePlan(plan models.DayPlan) (PlanColumns, error) {
	var cols PlanColumns
	var err error
	if cols.Survey, err = json.Marshal(plan.Survey); err != nil {
		return cols, fmt.Errorf("failed to encode survey: %w", err)
	}
	if cols.Weather, err = json.Marshal(plan.Weather); err != nil {
		return cols, fmt.Errorf("failed to encode weather: %w", err)
	}
	appts := plan.Appointments
	if appts == nil {
		appts = []models.Appointment{}
	}
	if cols.Appointments, err = json.Marshal(appts); err != nil {
		return cols, fmt.Errorf("failed to encode appointments: %w", err)
	}
	items := plan.Items
	if items == nil {
		items = []models.ScheduledItem{}
	}
	if cols.Items, err = json.Marshal(items); err != nil {
		return cols, fmt.Errorf("failed to encode items: %w", err)
	}
	return cols, nil
}

// DecodePlan fills plan from the stored columns.
func DecodePlan(plan *models.DayPlan, cols PlanColumns) error {
	if err := json.Unmarshal(cols.Survey, &plan.Survey); err != nil {
		return fmt.Errorf("failed to decode survey for %s: %w", plan.Date, err)
	}
	if err := json.Unmarshal(cols.Weather, &plan.Weather); err != nil {
		return fmt.Errorf("failed to decode weather for %s: %w", plan.Date, err)
	}
	if err := json.Unmarshal(cols.Appointments, &plan.Appointments); err != nil {
		return fmt.Errorf("failed to decode appointments for %s: %w", plan.Date, err)
	}
	if err := json.Unmarshal(cols.Items, &plan.Items); err != nil {
		return fmt.Errorf("failed to decode items for %s: %w", plan.Date, err)
	}
	return nil
}
