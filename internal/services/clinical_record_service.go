package services

import (
	"context"

	"vetapp-api/internal/models"
	"vetapp-api/internal/storage"
	"vetapp-api/internal/transport/dto"
)

type clinicalRecordService struct {
	recordRepo storage.ClinicalRecordRepository
}

// NewClinicalRecordService creates the clinical history service.
func NewClinicalRecordService(recordRepo storage.ClinicalRecordRepository) ClinicalRecordService {
	return &clinicalRecordService{recordRepo: recordRepo}
}

func (s *clinicalRecordService) GetAll(ctx context.Context, req *dto.ListClinicalRecordsRequest) ([]models.ClinicalRecord, error) {
	records, err := s.recordRepo.GetAll(ctx, req.PetID)
	if err != nil {
		return nil, MapRepoError(err, "listing clinical records")
	}
	return records, nil
}

func (s *clinicalRecordService) GetByID(ctx context.Context, id int64) (*models.ClinicalRecord, error) {
	rec, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "fetching clinical record")
	}
	return rec, nil
}

func (s *clinicalRecordService) Create(ctx context.Context, req *dto.CreateClinicalRecordRequest) (*models.ClinicalRecord, error) {
	rec := &models.ClinicalRecord{
		ConsultationDate: req.ConsultationDate,
		Diagnosis:        req.Diagnosis,
		Symptoms:         req.Symptoms,
		Treatment:        req.Treatment,
		Notes:            req.Notes,
		Weight:           req.Weight,
		Temperature:      req.Temperature,
		PetID:            req.PetID,
	}

	created, err := s.recordRepo.Create(ctx, rec)
	if err != nil {
		return nil, MapRepoError(err, "creating clinical record")
	}
	return created, nil
}

func (s *clinicalRecordService) Update(ctx context.Context, req *dto.UpdateClinicalRecordRequest) (*models.ClinicalRecord, error) {
	existing, err := s.recordRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching clinical record for update")
	}

	existing.ConsultationDate = req.ConsultationDate
	existing.Diagnosis = req.Diagnosis
	existing.Symptoms = req.Symptoms
	existing.Treatment = req.Treatment
	existing.Notes = req.Notes
	existing.Weight = req.Weight
	existing.Temperature = req.Temperature

	updated, err := s.recordRepo.Update(ctx, existing)
	if err != nil {
		return nil, MapRepoError(err, "updating clinical record")
	}
	return updated, nil
}

func (s *clinicalRecordService) Delete(ctx context.Context, id int64) error {
	if err := s.recordRepo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting clinical record")
	}
	return nil
}
