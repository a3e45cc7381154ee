package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vetapp-api/internal/models"
	"vetapp-api/internal/storage"
)

// ClinicalRecordRepo implements storage.ClinicalRecordRepository using PostgreSQL.
type ClinicalRecordRepo struct {
	db Querier
}

// NewClinicalRecordRepo creates a new ClinicalRecordRepo.
func NewClinicalRecordRepo(db *pgxpool.Pool) *ClinicalRecordRepo {
	return &ClinicalRecordRepo{db: db}
}

var _ storage.ClinicalRecordRepository = (*ClinicalRecordRepo)(nil)

const recordSelect = `
	SELECT r.id, r.consultation_date, r.diagnosis, r.symptoms, r.treatment, r.notes,
	       r.weight, r.temperature, r.pet_id, r.created_at, r.updated_at,
	       p.name, o.first_name || ' ' || o.last_name
	FROM clinical_records r
	JOIN pets p ON p.id = r.pet_id
	JOIN owners o ON o.id = p.owner_id`

func scanRecord(row pgx.Row) (*models.ClinicalRecord, error) {
	var rec models.ClinicalRecord
	err := row.Scan(&rec.ID, &rec.ConsultationDate, &rec.Diagnosis, &rec.Symptoms, &rec.Treatment,
		&rec.Notes, &rec.Weight, &rec.Temperature, &rec.PetID, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.PetName, &rec.OwnerName)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetAll retrieves records, optionally restricted to one pet, newest first.
func (r *ClinicalRecordRepo) GetAll(ctx context.Context, petID *int64) ([]models.ClinicalRecord, error) {
	query := recordSelect
	args := []any{}
	if petID != nil {
		query += ` WHERE r.pet_id = $1`
		args = append(args, *petID)
	}
	query += ` ORDER BY r.consultation_date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying clinical records: %v\n", err)
		return nil, fmt.Errorf("failed to query clinical records: %w", err)
	}
	defer rows.Close()

	records := []models.ClinicalRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clinical record row: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// GetByID retrieves a single record by ID.
func (r *ClinicalRecordRepo) GetByID(ctx context.Context, id int64) (*models.ClinicalRecord, error) {
	row := r.db.QueryRow(ctx, recordSelect+` WHERE r.id = $1`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning clinical record by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get clinical record %d: %w", id, err)
	}
	return rec, nil
}

// Create saves a new consultation entry.
func (r *ClinicalRecordRepo) Create(ctx context.Context, rec *models.ClinicalRecord) (*models.ClinicalRecord, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO clinical_records
			(consultation_date, diagnosis, symptoms, treatment, notes, weight, temperature, pet_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id`,
		rec.ConsultationDate, rec.Diagnosis, rec.Symptoms, rec.Treatment, rec.Notes,
		rec.Weight, rec.Temperature, rec.PetID,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		if isPgErr(err, pgForeignKeyViolation) {
			log.Printf("Error creating clinical record: pet %d not found: %v\n", rec.PetID, err)
			return nil, fmt.Errorf("invalid pet ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating clinical record: %v\n", err)
		return nil, fmt.Errorf("failed to create clinical record: %w", err)
	}

	log.Printf("Clinical record created successfully with ID: %d", id)
	return r.GetByID(ctx, id)
}

// Update modifies an existing consultation entry.
func (r *ClinicalRecordRepo) Update(ctx context.Context, rec *models.ClinicalRecord) (*models.ClinicalRecord, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE clinical_records
		SET consultation_date = $2, diagnosis = $3, symptoms = $4, treatment = $5,
		    notes = $6, weight = $7, temperature = $8, updated_at = NOW()
		WHERE id = $1`,
		rec.ID, rec.ConsultationDate, rec.Diagnosis, rec.Symptoms, rec.Treatment,
		rec.Notes, rec.Weight, rec.Temperature,
	)
	if err != nil {
		log.Printf("Error updating clinical record %d: %v\n", rec.ID, err)
		return nil, fmt.Errorf("failed to update clinical record %d: %w", rec.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	return r.GetByID(ctx, rec.ID)
}

// Delete removes a consultation entry.
func (r *ClinicalRecordRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clinical_records WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting clinical record %d: %v\n", id, err)
		return fmt.Errorf("failed to delete clinical record %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
