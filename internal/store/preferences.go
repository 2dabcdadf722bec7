package store

import (
	"database/sql"
	"errors"
)

// GetPreference retrieves a preference value by key.
// Returns ErrPreferenceNotFound if the key doesn't exist.
func (s *Store) GetPreference(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM preferences WHERE key = ?
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	return value, err
}

// SetPreference inserts or updates a preference value
func (s *Store) SetPreference(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

// DeletePreference removes a preference. Missing keys are not an error.
func (s *Store) DeletePreference(key string) error {
	_, err := s.db.Exec(`DELETE FROM preferences WHERE key = ?`, key)
	return err
}

// AllPreferences returns every stored preference keyed by name
func (s *Store) AllPreferences() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM preferences ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prefs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		prefs[key] = value
	}

	return prefs, rows.Err()
}
