// Package gormrepo persists worlds in Postgres behind the ports
// interfaces. Grid payloads travel as JSONB; the schema lives under
// migrations/ and is applied by ApplyMigrations.
package gormrepo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
