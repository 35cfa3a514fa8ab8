package postgres

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

func (s *Store) SavePlan(plan models.DayPlan) error {
	if _, err := time.Parse(constants.DateFormat, plan.Date); err != nil {
		return fmt.Errorf("invalid plan date %q: %w", plan.Date, err)
	}

	cols, err := storage.EncodePlan(plan)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(`
		INSERT INTO plans (`+planColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (date) DO UPDATE SET
			survey_json = EXCLUDED.survey_json,
			weather_json = EXCLUDED.weather_json,
			appointments_json = EXCLUDED.appointments_json,
			items_json = EXCLUDED.items_json,
			updated_at = EXCLUDED.updated_at`,
		plan.Date, string(cols.Survey), string(cols.Weather), string(cols.Appointments), string(cols.Items), now,
	)
	if err != nil {
		return fmt.Errorf("failed to save plan %s: %w", plan.Date, err)
	}
	return nil
}

func (s *Store) GetPlan(date string) (models.DayPlan, error) {
	row := s.db.QueryRow("SELECT "+planColumns+" FROM plans WHERE date = $1", date)
	plan, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DayPlan{}, fmt.Errorf("plan for %s %w", date, storage.ErrNotFound)
	}
	return plan, err
}

func (s *Store) DeletePlan(date string) error {
	res, err := s.db.Exec("DELETE FROM plans WHERE date = $1", date)
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
	var cols storage.PlanColumns
	var createdAt, updatedAt time.Time
	if err := row.Scan(&plan.Date, &cols.Survey, &cols.Weather, &cols.Appointments, &cols.Items, &createdAt, &updatedAt); err != nil {
		return models.DayPlan{}, err
	}
	plan.CreatedAt = createdAt.UTC().Format(constants.PlanTimestampFormat)
	plan.UpdatedAt = updatedAt.UTC().Format(constants.PlanTimestampFormat)
	if err := storage.DecodePlan(&plan, cols); err != nil {
		return models.DayPlan{}, err
	}
	return plan, nil
}
