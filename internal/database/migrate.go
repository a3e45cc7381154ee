package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate runs all schema statements. Safe to call multiple times due to
// IF NOT EXISTS clauses.
func Migrate(pool *pgxpool.Pool) error {
	log.Println("Running database migrations...")

	ctx := context.Background()
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w\nstatement: %s", err, stmt)
		}
	}

	log.Println("Database migrations complete")
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS owners (
		id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		document TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS pets (
		id BIGSERIAL PRIMARY KEY,
		owner_id BIGINT NOT NULL REFERENCES owners(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		species TEXT NOT NULL,
		breed TEXT NOT NULL DEFAULT '',
		birth_date DATE,
		sex TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		weight NUMERIC(6,2),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		pet_id BIGINT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		date_time TIMESTAMPTZ NOT NULL,
		reason TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'SCHEDULED'
			CHECK (status IN ('SCHEDULED', 'CONFIRMED', 'IN_PROGRESS', 'COMPLETED', 'CANCELLED')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS clinical_records (
		id BIGSERIAL PRIMARY KEY,
		pet_id BIGINT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		consultation_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		diagnosis TEXT NOT NULL,
		symptoms TEXT NOT NULL DEFAULT '',
		treatment TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		weight NUMERIC(6,2),
		temperature NUMERIC(4,1),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS prescriptions (
		id BIGSERIAL PRIMARY KEY,
		pet_id BIGINT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		clinical_record_id BIGINT REFERENCES clinical_records(id) ON DELETE SET NULL,
		medication TEXT NOT NULL,
		dosage TEXT NOT NULL,
		frequency TEXT NOT NULL DEFAULT '',
		duration_days INT NOT NULL DEFAULT 0,
		instructions TEXT NOT NULL DEFAULT '',
		start_date DATE,
		end_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id BIGSERIAL PRIMARY KEY,
		invoice_number TEXT NOT NULL UNIQUE,
		owner_id BIGINT NOT NULL REFERENCES owners(id),
		owner_name TEXT NOT NULL,
		owner_email TEXT NOT NULL,
		pet_id BIGINT NOT NULL REFERENCES pets(id),
		pet_name TEXT NOT NULL,
		appointment_id BIGINT REFERENCES appointments(id) ON DELETE SET NULL,
		issued_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		notes TEXT NOT NULL DEFAULT '',
		subtotal NUMERIC(12,2) NOT NULL,
		tax_rate NUMERIC(5,2) NOT NULL,
		tax_amount NUMERIC(12,2) NOT NULL,
		total NUMERIC(12,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING'
			CHECK (status IN ('PENDING', 'PAID', 'CANCELLED'))
	)`,

	`CREATE TABLE IF NOT EXISTS invoice_items (
		id BIGSERIAL PRIMARY KEY,
		invoice_id BIGINT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		position INT NOT NULL,
		description TEXT NOT NULL,
		quantity INT NOT NULL CHECK (quantity >= 1),
		unit_price NUMERIC(12,2) NOT NULL CHECK (unit_price >= 0),
		line_subtotal NUMERIC(12,2) NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pets_owner_id ON pets(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_pet_id ON appointments(pet_id)`,
	`CREATE INDEX IF NOT EXISTS idx_clinical_records_pet_id ON clinical_records(pet_id)`,
	`CREATE INDEX IF NOT EXISTS idx_prescriptions_pet_id ON prescriptions(pet_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_owner_id ON invoices(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice_id ON invoice_items(invoice_id)`,
}
