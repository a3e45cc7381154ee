package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vetapp-api/config"
	"vetapp-api/internal/billing"
	"vetapp-api/internal/models"
	"vetapp-api/internal/notification"
	"vetapp-api/internal/storage"
	"vetapp-api/internal/transport/dto"
)

// invoiceNumberRetries bounds the regenerate-on-collision loop for the
// random invoice number suffix.
const invoiceNumberRetries = 3

type invoiceService struct {
	invoiceRepo storage.InvoiceRepository
	ownerRepo   storage.OwnerRepository
	petRepo     storage.PetRepository
	sender      notification.Sender
	cfg         config.BillingConfig
}

// NewInvoiceService creates the invoice business logic service.
func NewInvoiceService(
	invoiceRepo storage.InvoiceRepository,
	ownerRepo storage.OwnerRepository,
	petRepo storage.PetRepository,
	sender notification.Sender,
	cfg config.BillingConfig,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		ownerRepo:   ownerRepo,
		petRepo:     petRepo,
		sender:      sender,
		cfg:         cfg,
	}
}

// newInvoiceNumber builds a number like F-3FA85F64 from a random UUID prefix.
func (s *invoiceService) newInvoiceNumber() string {
	return s.cfg.InvoicePrefix + strings.ToUpper(uuid.New().String()[:8])
}

func (s *invoiceService) GetAll(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.invoiceRepo.GetAll(ctx)
	if err != nil {
		return nil, MapRepoError(err, "listing invoices")
	}
	return invoices, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "fetching invoice")
	}
	return inv, nil
}

func (s *invoiceService) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	owner, err := s.ownerRepo.GetByID(ctx, req.OwnerID)
	if err != nil {
		return nil, MapRepoError(err, "fetching owner for invoice")
	}
	pet, err := s.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, MapRepoError(err, "fetching pet for invoice")
	}
	if pet.OwnerID != owner.ID {
		log.Printf("CreateInvoice: pet %d does not belong to owner %d", pet.ID, owner.ID)
		return nil, ErrOwnerMismatch
	}

	items := make([]models.InvoiceItem, 0, len(req.Detalles))
	for i, d := range req.Detalles {
		if d.PrecioUnitario.IsNegative() {
			return nil, fmt.Errorf("%w: item %d has negative unit price", ErrInvalidLineItem, i+1)
		}
		items = append(items, models.InvoiceItem{
			Description: d.Descripcion,
			Quantity:    d.Cantidad,
			UnitPrice:   d.PrecioUnitario.Round(billing.CurrencyPrecision),
		})
	}

	taxRate := decimal.NewFromFloat(s.cfg.TaxRate)
	totals := billing.ComputeTotals(items, taxRate)

	inv := &models.Invoice{
		OwnerID:       owner.ID,
		OwnerName:     owner.FullName(),
		OwnerEmail:    owner.Email,
		PetID:         pet.ID,
		PetName:       pet.Name,
		AppointmentID: req.AppointmentID,
		Notes:         req.Notes,
		Items:         items,
		Subtotal:      totals.Subtotal,
		TaxRate:       taxRate,
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		Status:        models.InvoicePending,
	}

	var created *models.Invoice
	for attempt := 0; attempt < invoiceNumberRetries; attempt++ {
		inv.InvoiceNumber = s.newInvoiceNumber()
		created, err = s.invoiceRepo.Create(ctx, inv)
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrConflict) {
			return nil, MapRepoError(err, "creating invoice")
		}
		log.Printf("CreateInvoice: number collision on %s, retrying", inv.InvoiceNumber)
	}
	if err != nil {
		return nil, MapRepoError(err, "creating invoice after number retries")
	}

	log.Printf("Invoice %s created for owner %s: total %s", created.InvoiceNumber, created.OwnerName, created.Total)
	if created.OwnerEmail != "" {
		msg := notification.InvoiceIssued(created.OwnerEmail, created.OwnerName, created.InvoiceNumber, created.Total)
		go func() {
			if err := s.sender.Send(msg); err != nil {
				log.Printf("Invoice notification failed for %s: %v", msg.To, err)
			}
		}()
	}
	return created, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, req *dto.UpdateInvoiceStatusRequest) (*models.Invoice, error) {
	existing, err := s.invoiceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching invoice for status update")
	}

	next := models.InvoiceStatus(req.Status)
	if !existing.Status.CanTransitionTo(next) {
		log.Printf("UpdateStatus: invalid transition %s -> %s for invoice %d", existing.Status, next, existing.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, next)
	}

	updated, err := s.invoiceRepo.UpdateStatus(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "updating invoice status")
	}
	return updated, nil
}

func (s *invoiceService) Delete(ctx context.Context, id int64) error {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return MapRepoError(err, "deleting invoice")
	}
	return nil
}
