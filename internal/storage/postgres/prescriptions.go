package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vetapp-api/internal/models"
	"vetapp-api/internal/storage"
)

// PrescriptionRepo implements storage.PrescriptionRepository using PostgreSQL.
type PrescriptionRepo struct {
	db Querier
}

// NewPrescriptionRepo creates a new PrescriptionRepo.
func NewPrescriptionRepo(db *pgxpool.Pool) *PrescriptionRepo {
	return &PrescriptionRepo{db: db}
}

var _ storage.PrescriptionRepository = (*PrescriptionRepo)(nil)

const prescriptionSelect = `
	SELECT pr.id, pr.medication, pr.dosage, pr.frequency, pr.duration_days, pr.instructions,
	       pr.start_date, pr.end_date, pr.pet_id, pr.clinical_record_id, pr.created_at, p.name
	FROM prescriptions pr
	JOIN pets p ON p.id = pr.pet_id`

func scanPrescription(row pgx.Row) (*models.Prescription, error) {
	var pr models.Prescription
	err := row.Scan(&pr.ID, &pr.Medication, &pr.Dosage, &pr.Frequency, &pr.DurationDays,
		&pr.Instructions, &pr.StartDate, &pr.EndDate, &pr.PetID, &pr.ClinicalRecordID,
		&pr.CreatedAt, &pr.PetName)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// GetAll retrieves prescriptions, optionally restricted to one pet, newest first.
func (r *PrescriptionRepo) GetAll(ctx context.Context, petID *int64) ([]models.Prescription, error) {
	query := prescriptionSelect
	args := []any{}
	if petID != nil {
		query += ` WHERE pr.pet_id = $1`
		args = append(args, *petID)
	}
	query += ` ORDER BY pr.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying prescriptions: %v\n", err)
		return nil, fmt.Errorf("failed to query prescriptions: %w", err)
	}
	defer rows.Close()

	prescriptions := []models.Prescription{}
	for rows.Next() {
		pr, err := scanPrescription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prescription row: %w", err)
		}
		prescriptions = append(prescriptions, *pr)
	}
	return prescriptions, rows.Err()
}

// Create saves a new prescription.
func (r *PrescriptionRepo) Create(ctx context.Context, p *models.Prescription) (*models.Prescription, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO prescriptions
			(medication, dosage, frequency, duration_days, instructions, start_date, end_date,
			 pet_id, clinical_record_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id`,
		p.Medication, p.Dosage, p.Frequency, p.DurationDays, p.Instructions,
		p.StartDate, p.EndDate, p.PetID, p.ClinicalRecordID,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		if isPgErr(err, pgForeignKeyViolation) {
			log.Printf("Error creating prescription: related pet or record not found: %v\n", err)
			return nil, fmt.Errorf("invalid pet or clinical record ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating prescription: %v\n", err)
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}

	log.Printf("Prescription created successfully with ID: %d", id)

	created, err := scanPrescription(r.db.QueryRow(ctx, prescriptionSelect+` WHERE pr.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to reload prescription %d: %w", id, err)
	}
	return created, nil
}

// Delete removes a prescription.
func (r *PrescriptionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM prescriptions WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting prescription %d: %v\n", id, err)
		return fmt.Errorf("failed to delete prescription %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
