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

// OwnerRepo implements the storage.OwnerRepository interface using PostgreSQL.
type OwnerRepo struct {
	db Querier
}

// NewOwnerRepo creates a new OwnerRepo.
func NewOwnerRepo(db *pgxpool.Pool) *OwnerRepo {
	return &OwnerRepo{db: db}
}

// Compile-time check to ensure OwnerRepo implements OwnerRepository
var _ storage.OwnerRepository = (*OwnerRepo)(nil)

const ownerColumns = `id, first_name, last_name, document, phone, email, address, created_at`

func scanOwner(row pgx.Row) (*models.Owner, error) {
	var o models.Owner
	err := row.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Document, &o.Phone, &o.Email, &o.Address, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetAll retrieves all owners ordered by last name.
func (r *OwnerRepo) GetAll(ctx context.Context) ([]models.Owner, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ownerColumns+` FROM owners ORDER BY last_name, first_name`)
	if err != nil {
		log.Printf("Error querying all owners: %v\n", err)
		return nil, fmt.Errorf("failed to query owners: %w", err)
	}
	defer rows.Close()

	owners := []models.Owner{}
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan owner row: %w", err)
		}
		owners = append(owners, *o)
	}
	return owners, rows.Err()
}

// GetByID retrieves a single owner by ID.
func (r *OwnerRepo) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	row := r.db.QueryRow(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = $1`, id)

	owner, err := scanOwner(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning owner by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get owner %d: %w", id, err)
	}
	return owner, nil
}

// Create saves a new owner. Duplicate document or email maps to ErrConflict.
func (r *OwnerRepo) Create(ctx context.Context, owner *models.Owner) (*models.Owner, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO owners (first_name, last_name, document, phone, email, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING `+ownerColumns,
		owner.FirstName, owner.LastName, owner.Document, owner.Phone, owner.Email, owner.Address,
	)

	created, err := scanOwner(row)
	if err != nil {
		if isPgErr(err, pgUniqueViolation) {
			log.Printf("Error creating owner (duplicate document or email): %v\n", err)
			return nil, fmt.Errorf("owner with this document or email already exists: %w", storage.ErrConflict)
		}
		log.Printf("Error creating owner: %v\n", err)
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	log.Printf("Owner created successfully with ID: %d", created.ID)
	return created, nil
}

// Update modifies an existing owner's mutable fields.
func (r *OwnerRepo) Update(ctx context.Context, owner *models.Owner) (*models.Owner, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE owners
		SET first_name = $2, last_name = $3, phone = $4, address = $5
		WHERE id = $1
		RETURNING `+ownerColumns,
		owner.ID, owner.FirstName, owner.LastName, owner.Phone, owner.Address,
	)

	updated, err := scanOwner(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating owner %d: %v\n", owner.ID, err)
		return nil, fmt.Errorf("failed to update owner %d: %w", owner.ID, err)
	}
	return updated, nil
}

// Delete removes an owner. Pets cascade at the schema level.
func (r *OwnerRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting owner %d: %v\n", id, err)
		return fmt.Errorf("failed to delete owner %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
