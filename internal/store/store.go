package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Store is the durable key/value backing for the converter state.
// It satisfies state.Storage.
type Store struct {
	db *sql.DB
}

// newStore creates a Store from a database connection.
func newStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the preference stored under key. Read errors are logged and
// reported as absent so callers fall back to their defaults.
func (s *Store) Get(key string) (string, bool) {
	value, err := s.GetPreference(key)
	if errors.Is(err, ErrPreferenceNotFound) {
		return "", false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("reading preference")
		return "", false
	}
	return value, true
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	return s.SetPreference(key, value)
}

// Reset removes the given keys, leaving other preferences alone.
func (s *Store) Reset(keys ...string) error {
	for _, key := range keys {
		if err := s.DeletePreference(key); err != nil {
			return fmt.Errorf("resetting %s: %w", key, err)
		}
	}
	return nil
}
