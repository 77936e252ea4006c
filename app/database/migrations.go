package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if missing and applies incremental updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createSchema(db); err != nil {
		return err
	}

	// Incremental updates for databases created before these columns existed
	if err := addAgeGroupColumn(db); err != nil {
		return err
	}
	if err := addArrivedAtColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20) NOT NULL DEFAULT '',
			birth_date DATE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			type VARCHAR(20) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'draft',
			location VARCHAR(255) NOT NULL DEFAULT '',
			starts_at TIMESTAMPTZ NOT NULL,
			ends_at TIMESTAMPTZ,
			is_recurring BOOLEAN NOT NULL DEFAULT false,
			recurrence_start DATE,
			recurrence_end DATE,
			recurrence_weekdays INTEGER[],
			parent_event_id UUID REFERENCES events(id) ON DELETE CASCADE,
			occurs_on DATE,
			race_fee NUMERIC(10,2),
			relay_fee NUMERIC(10,2),
			flat_fee NUMERIC(10,2),
			created_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// One generated child per (parent, date); concurrent expansions hit
		// this index instead of creating duplicates.
		`CREATE UNIQUE INDEX IF NOT EXISTS events_parent_occurs_on_unique
			ON events (parent_event_id, occurs_on)
			WHERE parent_event_id IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS events_starts_at_idx ON events (starts_at)`,
		`CREATE TABLE IF NOT EXISTS convocation_groups (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			pricing_mode VARCHAR(20) NOT NULL,
			race_fee NUMERIC(10,2),
			relay_fee NUMERIC(10,2),
			flat_fee NUMERIC(10,2),
			notes TEXT NOT NULL DEFAULT '',
			created_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS convocation_athletes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			group_id UUID NOT NULL REFERENCES convocation_groups(id) ON DELETE CASCADE,
			athlete_id UUID NOT NULL REFERENCES users(id),
			races INTEGER NOT NULL DEFAULT 0,
			relay_legs INTEGER NOT NULL DEFAULT 0,
			confirmed BOOLEAN NOT NULL DEFAULT false,
			present BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (group_id, athlete_id)
		)`,
		`CREATE TABLE IF NOT EXISTS convocation_movements (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			group_id UUID NOT NULL REFERENCES convocation_groups(id) ON DELETE CASCADE,
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			athlete_id UUID NOT NULL REFERENCES users(id),
			amount NUMERIC(10,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (group_id, athlete_id)
		)`,
		`CREATE TABLE IF NOT EXISTS attendances (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			user_id UUID NOT NULL REFERENCES users(id),
			status VARCHAR(10) NOT NULL,
			arrived_at TIMESTAMPTZ,
			notes TEXT NOT NULL DEFAULT '',
			marked_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (event_id, user_id)
		)`,
		`INSERT INTO roles (name) VALUES ('admin'), ('coach'), ('athlete')
			ON CONFLICT (name) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run schema statement: %v", err)
			return err
		}
	}
	return nil
}

func addAgeGroupColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'users'
				AND column_name = 'age_group'
			) THEN
				ALTER TABLE users ADD COLUMN age_group VARCHAR(50) NOT NULL DEFAULT '';
				RAISE NOTICE 'Added age_group column to users';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for age_group column: %v", err)
		return err
	}
	return nil
}

func addArrivedAtColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'attendances'
				AND column_name = 'arrived_at'
			) THEN
				ALTER TABLE attendances ADD COLUMN arrived_at TIMESTAMPTZ;
				RAISE NOTICE 'Added arrived_at column to attendances';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for arrived_at column: %v", err)
		return err
	}
	return nil
}
