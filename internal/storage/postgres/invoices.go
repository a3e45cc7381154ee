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
	"vetapp-api/internal/transport/dto"
)

// InvoiceRepo implements storage.InvoiceRepository using PostgreSQL.
// It owns the invoice/items transaction, so it keeps the pool rather than
// a Querier.
type InvoiceRepo struct {
	db *pgxpool.Pool
}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo(db *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

var _ storage.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, invoice_number, owner_id, owner_name, owner_email, pet_id, pet_name,
	appointment_id, issued_at, notes, subtotal, tax_rate, tax_amount, total, status`

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.OwnerID, &inv.OwnerName, &inv.OwnerEmail,
		&inv.PetID, &inv.PetName, &inv.AppointmentID, &inv.IssuedAt, &inv.Notes,
		&inv.Subtotal, &inv.TaxRate, &inv.TaxAmount, &inv.Total, &inv.Status)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// loadItems fetches the line items for the given invoice IDs, keyed by
// invoice, preserving each invoice's submission order.
func (r *InvoiceRepo) loadItems(ctx context.Context, invoiceIDs []int64) (map[int64][]models.InvoiceItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT invoice_id, id, description, quantity, unit_price, line_subtotal
		FROM invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, position`,
		invoiceIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice items: %w", err)
	}
	defer rows.Close()

	items := make(map[int64][]models.InvoiceItem, len(invoiceIDs))
	for rows.Next() {
		var invoiceID int64
		var it models.InvoiceItem
		if err := rows.Scan(&invoiceID, &it.ID, &it.Description, &it.Quantity, &it.UnitPrice, &it.LineSubtotal); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		items[invoiceID] = append(items[invoiceID], it)
	}
	return items, rows.Err()
}

// GetAll retrieves all invoices with their items, newest first.
func (r *InvoiceRepo) GetAll(ctx context.Context) ([]models.Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY issued_at DESC`)
	if err != nil {
		log.Printf("Error querying all invoices: %v\n", err)
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	ids := []int64{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *inv)
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return invoices, nil
	}

	itemsByInvoice, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Items = itemsByInvoice[invoices[i].ID]
	}
	return invoices, nil
}

// GetByID retrieves a single invoice with its items.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	row := r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)

	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning invoice by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get invoice %d: %w", id, err)
	}

	itemsByInvoice, err := r.loadItems(ctx, []int64{inv.ID})
	if err != nil {
		return nil, err
	}
	inv.Items = itemsByInvoice[inv.ID]
	return inv, nil
}

// Create persists the invoice and its items atomically. The caller has
// already computed every derived value; a duplicate invoice number maps to
// ErrConflict so the number can be regenerated and retried.
func (r *InvoiceRepo) Create(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		log.Printf("Error beginning invoice transaction: %v\n", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO invoices
			(invoice_number, owner_id, owner_name, owner_email, pet_id, pet_name,
			 appointment_id, issued_at, notes, subtotal, tax_rate, tax_amount, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8, $9, $10, $11, $12, $13)
		RETURNING id, issued_at`,
		inv.InvoiceNumber, inv.OwnerID, inv.OwnerName, inv.OwnerEmail, inv.PetID, inv.PetName,
		inv.AppointmentID, inv.Notes, inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.Total, inv.Status,
	)
	if err := row.Scan(&inv.ID, &inv.IssuedAt); err != nil {
		if isPgErr(err, pgUniqueViolation) {
			log.Printf("Error creating invoice (duplicate number %s): %v\n", inv.InvoiceNumber, err)
			return nil, fmt.Errorf("invoice number %s already exists: %w", inv.InvoiceNumber, storage.ErrConflict)
		}
		log.Printf("Error creating invoice: %v\n", err)
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	for pos := range inv.Items {
		it := &inv.Items[pos]
		err := tx.QueryRow(ctx, `
			INSERT INTO invoice_items (invoice_id, position, description, quantity, unit_price, line_subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			inv.ID, pos, it.Description, it.Quantity, it.UnitPrice, it.LineSubtotal,
		).Scan(&it.ID)
		if err != nil {
			log.Printf("Error creating invoice item %d for invoice %d: %v\n", pos, inv.ID, err)
			return nil, fmt.Errorf("failed to create invoice item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing invoice %d: %v\n", inv.ID, err)
		return nil, fmt.Errorf("failed to commit invoice: %w", err)
	}

	log.Printf("Invoice created successfully with ID: %d, number: %s", inv.ID, inv.InvoiceNumber)
	return inv, nil
}

// UpdateStatus applies a status transition.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, req *dto.UpdateInvoiceStatusRequest) (*models.Invoice, error) {
	tag, err := r.db.Exec(ctx, `UPDATE invoices SET status = $2 WHERE id = $1`, req.ID, req.Status)
	if err != nil {
		log.Printf("Error updating invoice status %d: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update invoice status %d: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}

	log.Printf("Invoice status updated successfully for ID: %d to %s", req.ID, req.Status)
	return r.GetByID(ctx, req.ID)
}

// Delete removes an invoice; items cascade at the schema level.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting invoice %d: %v\n", id, err)
		return fmt.Errorf("failed to delete invoice %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Invoice not found for deletion with ID: %d\n", id)
		return storage.ErrNotFound
	}

	log.Printf("Invoice deleted successfully: %d", id)
	return nil
}
