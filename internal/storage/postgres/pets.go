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

// PetRepo implements the storage.PetRepository interface using PostgreSQL.
// Queries join the owner so responses carry the denormalized owner fields.
type PetRepo struct {
	db Querier
}

// NewPetRepo creates a new PetRepo.
func NewPetRepo(db *pgxpool.Pool) *PetRepo {
	return &PetRepo{db: db}
}

var _ storage.PetRepository = (*PetRepo)(nil)

const petSelect = `
	SELECT p.id, p.name, p.species, p.breed, p.birth_date, p.sex, p.color, p.weight,
	       p.owner_id, p.created_at, o.first_name || ' ' || o.last_name, o.email
	FROM pets p
	JOIN owners o ON o.id = p.owner_id`

func scanPet(row pgx.Row) (*models.Pet, error) {
	var p models.Pet
	err := row.Scan(&p.ID, &p.Name, &p.Species, &p.Breed, &p.BirthDate, &p.Sex, &p.Color,
		&p.Weight, &p.OwnerID, &p.CreatedAt, &p.OwnerName, &p.OwnerEmail)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAll retrieves pets, optionally restricted to one owner.
func (r *PetRepo) GetAll(ctx context.Context, ownerID *int64) ([]models.Pet, error) {
	query := petSelect
	args := []any{}
	if ownerID != nil {
		query += ` WHERE p.owner_id = $1`
		args = append(args, *ownerID)
	}
	query += ` ORDER BY p.name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying pets: %v\n", err)
		return nil, fmt.Errorf("failed to query pets: %w", err)
	}
	defer rows.Close()

	pets := []models.Pet{}
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet row: %w", err)
		}
		pets = append(pets, *p)
	}
	return pets, rows.Err()
}

// GetByID retrieves a single pet by ID.
func (r *PetRepo) GetByID(ctx context.Context, id int64) (*models.Pet, error) {
	row := r.db.QueryRow(ctx, petSelect+` WHERE p.id = $1`, id)

	pet, err := scanPet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning pet by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get pet %d: %w", id, err)
	}
	return pet, nil
}

// Create saves a new pet. A missing owner maps to ErrConflict.
func (r *PetRepo) Create(ctx context.Context, pet *models.Pet) (*models.Pet, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO pets (name, species, breed, birth_date, sex, color, weight, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id`,
		pet.Name, pet.Species, pet.Breed, pet.BirthDate, pet.Sex, pet.Color, pet.Weight, pet.OwnerID,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		if isPgErr(err, pgForeignKeyViolation) {
			log.Printf("Error creating pet: owner %d not found: %v\n", pet.OwnerID, err)
			return nil, fmt.Errorf("invalid owner ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating pet: %v\n", err)
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	log.Printf("Pet created successfully with ID: %d", id)
	return r.GetByID(ctx, id)
}

// Delete removes a pet.
func (r *PetRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting pet %d: %v\n", id, err)
		return fmt.Errorf("failed to delete pet %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
