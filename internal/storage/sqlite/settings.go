package sqlite

import (
	"fmt"

	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/storage"
)

func (s *Store) GetPreferences() (models.UserPreferences, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.UserPreferences{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.UserPreferences{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.UserPreferences{}, err
	}

	if len(data) == 0 {
		return models.UserPreferences{}, fmt.Errorf("preferences %w", storage.ErrNotFound)
	}

	prefs, err := models.MapToPreferences(data)
	if err != nil {
		return models.UserPreferences{}, err
	}
	models.ApplyDefaultPreferences(&prefs)
	return prefs, nil
}

func (s *Store) SavePreferences(prefs models.UserPreferences) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range models.PreferencesToMap(prefs) {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}
