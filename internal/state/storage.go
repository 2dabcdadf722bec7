package state

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Storage is the key/value port the state stores persist through.
// Get reports false when the key is absent.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Persisted keys
const (
	KeyPaceMinutes  = "pace-tool-pace-minutes"
	KeyPaceSeconds  = "pace-tool-pace-seconds"
	KeyPaceUnit     = "pace-tool-pace-unit"
	KeyDistance     = "pace-tool-distance"
	KeyDistanceUnit = "pace-tool-distance-unit"
)

// Keys returns every key the state stores persist
func Keys() []string {
	return []string{KeyPaceMinutes, KeyPaceSeconds, KeyPaceUnit, KeyDistance, KeyDistanceUnit}
}

// MemoryStorage is a map-backed Storage for tests and ephemeral sessions
type MemoryStorage struct {
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the value stored under key
func (m *MemoryStorage) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key
func (m *MemoryStorage) Set(key, value string) error {
	m.values[key] = value
	return nil
}

// Len returns the number of stored keys
func (m *MemoryStorage) Len() int {
	return len(m.values)
}

// persist writes each key/value pair, logging failures without stopping.
// Storage is best effort; the in-memory state is already updated. The first
// failure is returned so callers can surface it.
func persist(storage Storage, kv ...string) error {
	if storage == nil {
		return nil
	}
	var first error
	for i := 0; i+1 < len(kv); i += 2 {
		if err := storage.Set(kv[i], kv[i+1]); err != nil {
			log.Warn().Err(err).Str("key", kv[i]).Msg("persisting state")
			if first == nil {
				first = fmt.Errorf("saving %s: %w", kv[i], err)
			}
		}
	}
	return first
}

func lookup(storage Storage, key string) (string, bool) {
	if storage == nil {
		return "", false
	}
	return storage.Get(key)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
