// Package presenter renders canonical invoices for display: compact list
// entries, full detail views, and the printable PDF document. Money fields
// are formatted from the server's values only; nothing is recomputed here,
// so screen and print can never disagree.
package presenter

import (
	"fmt"

	"vetapp-api/internal/models"
	"vetapp-api/internal/money"
)

const dateLayout = "02/01/2006"

// ListEntry is the compact card shown in the invoice list.
type ListEntry struct {
	ID            int64
	InvoiceNumber string
	OwnerName     string
	PetName       string
	IssuedAt      string
	Status        string
	Total         string
}

// DetailLine is one formatted row of the detail table.
type DetailLine struct {
	Description string
	Quantity    string
	UnitPrice   string
	Subtotal    string
}

// DetailView is the full tabular rendering of one invoice. The PDF
// document is laid out from this same view, string for string.
type DetailView struct {
	InvoiceNumber string
	OwnerName     string
	OwnerEmail    string
	PetName       string
	IssuedAt      string
	Status        string
	Lines         []DetailLine
	Subtotal      string
	TaxLabel      string
	TaxAmount     string
	Total         string
}

// ListEntryFor builds the list card for one invoice.
func ListEntryFor(inv *models.Invoice) ListEntry {
	return ListEntry{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		OwnerName:     inv.OwnerName,
		PetName:       inv.PetName,
		IssuedAt:      inv.IssuedAt.Format(dateLayout),
		Status:        string(inv.Status),
		Total:         money.FormatCOP(inv.Total),
	}
}

// DetailFor builds the full detail view for one invoice.
func DetailFor(inv *models.Invoice) DetailView {
	lines := make([]DetailLine, 0, len(inv.Items))
	for _, it := range inv.Items {
		lines = append(lines, DetailLine{
			Description: it.Description,
			Quantity:    fmt.Sprintf("%d", it.Quantity),
			UnitPrice:   money.FormatCOP(it.UnitPrice),
			Subtotal:    money.FormatCOP(it.LineSubtotal),
		})
	}
	return DetailView{
		InvoiceNumber: inv.InvoiceNumber,
		OwnerName:     inv.OwnerName,
		OwnerEmail:    inv.OwnerEmail,
		PetName:       inv.PetName,
		IssuedAt:      inv.IssuedAt.Format(dateLayout),
		Status:        string(inv.Status),
		Lines:         lines,
		Subtotal:      money.FormatCOP(inv.Subtotal),
		TaxLabel:      fmt.Sprintf("IVA (%s%%)", money.FormatPercent(inv.TaxRate)),
		TaxAmount:     money.FormatCOP(inv.TaxAmount),
		Total:         money.FormatCOP(inv.Total),
	}
}
