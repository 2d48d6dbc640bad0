package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS quotations (
		id UUID PRIMARY KEY,
		customer_name TEXT NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'draft',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		payload JSONB NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_status ON quotations (status);`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_created_at ON quotations (created_at);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
