package services

import (
	"context"
	"log"

	"vetapp-api/internal/cache"
	"vetapp-api/internal/models"
	"vetapp-api/internal/storage"
	"vetapp-api/internal/transport/dto"
)

type petService struct {
	petRepo   storage.PetRepository
	listCache *cache.ListCache
}

// NewPetService creates the pet business logic service.
func NewPetService(petRepo storage.PetRepository, listCache *cache.ListCache) PetService {
	return &petService{
		petRepo:   petRepo,
		listCache: listCache,
	}
}

func (s *petService) GetAll(ctx context.Context, req *dto.ListPetsRequest) ([]models.Pet, error) {
	// Only the unfiltered list is cached; per-owner views hit the database.
	if req.OwnerID == nil {
		var cached []models.Pet
		if s.listCache.Get(ctx, cache.PetsListKey, &cached) {
			return cached, nil
		}
	}

	pets, err := s.petRepo.GetAll(ctx, req.OwnerID)
	if err != nil {
		return nil, MapRepoError(err, "listing pets")
	}
	if req.OwnerID == nil {
		s.listCache.Set(ctx, cache.PetsListKey, pets)
	}
	return pets, nil
}

func (s *petService) GetByID(ctx context.Context, id int64) (*models.Pet, error) {
	pet, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "fetching pet")
	}
	return pet, nil
}

func (s *petService) Create(ctx context.Context, req *dto.CreatePetRequest) (*models.Pet, error) {
	pet := &models.Pet{
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		BirthDate: req.BirthDate,
		Sex:       req.Sex,
		Color:     req.Color,
		Weight:    req.Weight,
		OwnerID:   req.OwnerID,
	}

	created, err := s.petRepo.Create(ctx, pet)
	if err != nil {
		return nil, MapRepoError(err, "creating pet")
	}

	s.listCache.Invalidate(ctx, cache.PetsListKey)
	log.Printf("Pet registered: %s (ID %d) for owner %d", created.Name, created.ID, created.OwnerID)
	return created, nil
}

func (s *petService) Delete(ctx context.Context, id int64) error {
	if err := s.petRepo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting pet")
	}

	s.listCache.Invalidate(ctx, cache.PetsListKey)
	return nil
}
