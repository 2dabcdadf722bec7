package store

import (
	"database/sql"
	"fmt"
)

// NewTestStore creates a Store for testing on top of an open database,
// running migrations first. This is only intended for use in tests.
func NewTestStore(sqlDB *sql.DB) (*Store, error) {
	sqlDB.SetMaxOpenConns(1)
	if err := migrate(sqlDB); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return newStore(sqlDB), nil
}
