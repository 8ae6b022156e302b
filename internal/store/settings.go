package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoSetting is reported by GetSetting for keys that were never set.
var ErrNoSetting = errors.New("setting not found")

type Setting struct {
	Key   string
	Value string
}

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("get setting %q: %w", key, ErrNoSetting)
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

const defaultUser = "default"

// ActiveUser returns the profile name new sessions track against. An
// absent key falls back to the default profile rather than erroring,
// so a pre-migration or hand-edited database still opens.
func (s *Store) ActiveUser() (string, error) {
	user, err := s.GetSetting("user")
	if errors.Is(err, ErrNoSetting) {
		return defaultUser, nil
	}
	if err != nil {
		return "", err
	}
	return user, nil
}

// SetActiveUser switches the active profile.
func (s *Store) SetActiveUser(userID string) error {
	return s.SetSetting("user", userID)
}
