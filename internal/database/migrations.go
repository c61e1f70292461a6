package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a schema change applied in order
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the full schema history, embedded so the binary needs
// no migrations directory on disk
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_routes",
		SQL: `CREATE TABLE IF NOT EXISTS routes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			total_distance_km REAL NOT NULL,
			elevation_gain_m INTEGER NOT NULL DEFAULT 0,
			max_elevation_m INTEGER,
			min_elevation_m INTEGER,
			point_count INTEGER NOT NULL,
			min_lat REAL NOT NULL,
			max_lat REAL NOT NULL,
			min_lng REAL NOT NULL,
			max_lng REAL NOT NULL,
			has_elevation INTEGER NOT NULL DEFAULT 0,
			display_points TEXT NOT NULL,
			thumbnail_points TEXT NOT NULL,
			original_gpx TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Version: 2,
		Name:    "index_routes_created_at",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_routes_created_at ON routes(created_at)`,
	},
}

// Migrate applies all pending migrations to the given database
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return err
		}
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", m.Version, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}

	log.Printf("Applied migration %d: %s", m.Version, m.Name)
	return nil
}
