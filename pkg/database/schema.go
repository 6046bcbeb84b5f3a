package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// The programs unique constraint is the final arbiter for concurrent
// creations with the same name; the application existence check is only a
// pre-check.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS programs (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		description VARCHAR(200) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		date_of_birth DATE NOT NULL,
		contact_info VARCHAR(100) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS enrollments (
		id SERIAL PRIMARY KEY,
		client_id INTEGER NOT NULL REFERENCES clients(id),
		program_id INTEGER NOT NULL REFERENCES programs(id),
		enrollment_date DATE NOT NULL,
		notes VARCHAR(500) NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_client_id ON enrollments (client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_names ON clients (LOWER(first_name), LOWER(last_name))`,
}

// Migrate creates the schema at startup when absent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
