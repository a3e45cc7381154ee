package services

import (
	"context"
	"log"

	"vetapp-api/internal/cache"
	"vetapp-api/internal/models"
	"vetapp-api/internal/storage"
	"vetapp-api/internal/transport/dto"
)

type ownerService struct {
	ownerRepo storage.OwnerRepository
	listCache *cache.ListCache
}

// NewOwnerService creates the owner business logic service.
func NewOwnerService(ownerRepo storage.OwnerRepository, listCache *cache.ListCache) OwnerService {
	return &ownerService{
		ownerRepo: ownerRepo,
		listCache: listCache,
	}
}

func (s *ownerService) GetAll(ctx context.Context) ([]models.Owner, error) {
	var cached []models.Owner
	if s.listCache.Get(ctx, cache.OwnersListKey, &cached) {
		return cached, nil
	}

	owners, err := s.ownerRepo.GetAll(ctx)
	if err != nil {
		return nil, MapRepoError(err, "listing owners")
	}
	s.listCache.Set(ctx, cache.OwnersListKey, owners)
	return owners, nil
}

func (s *ownerService) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "fetching owner")
	}
	return owner, nil
}

func (s *ownerService) Create(ctx context.Context, req *dto.CreateOwnerRequest) (*models.Owner, error) {
	owner := &models.Owner{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Document:  req.Document,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	}

	created, err := s.ownerRepo.Create(ctx, owner)
	if err != nil {
		return nil, MapRepoError(err, "creating owner")
	}

	s.listCache.Invalidate(ctx, cache.OwnersListKey)
	log.Printf("Owner registered: %s (ID %d)", created.FullName(), created.ID)
	return created, nil
}

func (s *ownerService) Update(ctx context.Context, req *dto.UpdateOwnerRequest) (*models.Owner, error) {
	existing, err := s.ownerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching owner for update")
	}

	// Document and email are immutable after registration.
	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Phone = req.Phone
	existing.Address = req.Address

	updated, err := s.ownerRepo.Update(ctx, existing)
	if err != nil {
		return nil, MapRepoError(err, "updating owner")
	}

	s.listCache.Invalidate(ctx, cache.OwnersListKey)
	return updated, nil
}

func (s *ownerService) Delete(ctx context.Context, id int64) error {
	if err := s.ownerRepo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting owner")
	}

	// Pets cascade at the schema level, so both lists are stale.
	s.listCache.Invalidate(ctx, cache.OwnersListKey, cache.PetsListKey)
	return nil
}
