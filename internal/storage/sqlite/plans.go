package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/littleday/internal/constants"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/storage"
)

const planColumns = "date, survey_json, weather_json, appointments_json, items_json, created_at, updated_at"

// SavePlan inserts or overwrites the plan for plan.Date. CreatedAt survives
// overwrites; UpdatedAt is always set to now.
func (s *Store) SavePlan(plan models.DayPlan) error {
	if _, err := time.Parse(constants.DateFormat, plan.Date); err != nil {
		return fmt.Errorf("invalid plan date %q: %w", plan.Date, err)
	}

	cols, err := storage.EncodePlan(plan)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(constants.PlanTimestampFormat)
	createdAt := now
	var existing string
	err = tx.QueryRow("SELECT created_at FROM plans WHERE date = ?", plan.Date).Scan(&existing)
	switch {
	case err == nil:
		createdAt = existing
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("failed to check existing plan: %w", err)
	}

	_, err = tx.Exec(
		"INSERT OR REPLACE INTO plans ("+planColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		plan.Date, string(cols.Survey), string(cols.Weather), string(cols.Appointments), string(cols.Items), createdAt, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save plan %s: %w", plan.Date, err)
	}

	return tx.Commit()
}

func (s *Store) GetPlan(date string) (models.DayPlan, error) {
	row := s.db.QueryRow("SELECT "+planColumns+" FROM plans WHERE date = ?", date)
	plan, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DayPlan{}, fmt.Errorf("plan for %s %w", date, storage.ErrNotFound)
	}
	return plan, err
}

func (s *Store) DeletePlan(date string) error {
	res, err := s.db.Exec("DELETE FROM plans WHERE date = ?", date)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("plan for %s %w", date, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) ListPlans() ([]models.DayPlan, error) {
	rows, err := s.db.Query("SELECT " + planColumns + " FROM plans ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.DayPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlan(row scanner) (models.DayPlan, error) {
	var plan models.DayPlan
	var survey, weather, appts, items string
	if err := row.Scan(&plan.Date, &survey, &weather, &appts, &items, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		return models.DayPlan{}, err
	}
	cols := storage.PlanColumns{
		Survey:       []byte(survey),
		Weather:      []byte(weather),
		Appointments: []byte(appts),
		Items:        []byte(items),
	}
	if err := storage.DecodePlan(&plan, cols); err != nil {
		return models.DayPlan{}, err
	}
	return plan, nil
}
