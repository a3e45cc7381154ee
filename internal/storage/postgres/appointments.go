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

// AppointmentRepo implements storage.AppointmentRepository using PostgreSQL.
type AppointmentRepo struct {
	db Querier
}

// NewAppointmentRepo creates a new AppointmentRepo.
func NewAppointmentRepo(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

var _ storage.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentSelect = `
	SELECT a.id, a.date_time, a.reason, a.notes, a.status, a.pet_id, a.created_at,
	       p.name, o.first_name || ' ' || o.last_name, o.email
	FROM appointments a
	JOIN pets p ON p.id = a.pet_id
	JOIN owners o ON o.id = p.owner_id`

func scanAppointment(row pgx.Row) (*models.Appointment, error) {
	var a models.Appointment
	err := row.Scan(&a.ID, &a.DateTime, &a.Reason, &a.Notes, &a.Status, &a.PetID, &a.CreatedAt,
		&a.PetName, &a.OwnerName, &a.OwnerEmail)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAll retrieves appointments, optionally restricted to one pet,
// soonest first.
func (r *AppointmentRepo) GetAll(ctx context.Context, petID *int64) ([]models.Appointment, error) {
	query := appointmentSelect
	args := []any{}
	if petID != nil {
		query += ` WHERE a.pet_id = $1`
		args = append(args, *petID)
	}
	query += ` ORDER BY a.date_time`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying appointments: %v\n", err)
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	appts := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appts = append(appts, *a)
	}
	return appts, rows.Err()
}

// GetByID retrieves a single appointment by ID.
func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*models.Appointment, error) {
	row := r.db.QueryRow(ctx, appointmentSelect+` WHERE a.id = $1`, id)

	appt, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning appointment by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get appointment %d: %w", id, err)
	}
	return appt, nil
}

// Create saves a new appointment with SCHEDULED status.
func (r *AppointmentRepo) Create(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO appointments (date_time, reason, notes, status, pet_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id`,
		appt.DateTime, appt.Reason, appt.Notes, models.AppointmentScheduled, appt.PetID,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		if isPgErr(err, pgForeignKeyViolation) {
			log.Printf("Error creating appointment: pet %d not found: %v\n", appt.PetID, err)
			return nil, fmt.Errorf("invalid pet ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating appointment: %v\n", err)
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	log.Printf("Appointment created successfully with ID: %d", id)
	return r.GetByID(ctx, id)
}

// Update modifies an existing appointment.
func (r *AppointmentRepo) Update(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE appointments
		SET date_time = $2, reason = $3, notes = $4, status = $5
		WHERE id = $1`,
		appt.ID, appt.DateTime, appt.Reason, appt.Notes, appt.Status,
	)
	if err != nil {
		log.Printf("Error updating appointment %d: %v\n", appt.ID, err)
		return nil, fmt.Errorf("failed to update appointment %d: %w", appt.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	return r.GetByID(ctx, appt.ID)
}

// Delete removes an appointment.
func (r *AppointmentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting appointment %d: %v\n", id, err)
		return fmt.Errorf("failed to delete appointment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
