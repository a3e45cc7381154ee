package composer

import (
	"context"

	"vetapp-api/internal/client"
	"vetapp-api/internal/models"
)

// ViewState holds the lists fetched for the billing view. It is short
// lived: created on view entry, refreshed by explicit calls, and never
// mutated optimistically — lists change only after a confirmed server
// response.
type ViewState struct {
	api *client.Client

	Owners   []models.Owner
	Pets     []models.Pet
	Invoices []models.Invoice
}

// NewViewState creates an empty ViewState bound to an API client.
func NewViewState(api *client.Client) *ViewState {
	return &ViewState{api: api}
}

// Enter loads every list the billing view needs. Called on navigation into
// the view; staleness between visits is resolved here, not by cross-view
// invalidation.
func (v *ViewState) Enter(ctx context.Context) error {
	owners, err := v.api.ListOwners(ctx)
	if err != nil {
		return err
	}
	pets, err := v.api.ListPets(ctx, nil)
	if err != nil {
		return err
	}
	invoices, err := v.api.ListInvoices(ctx)
	if err != nil {
		return err
	}
	v.Owners = owners
	v.Pets = pets
	v.Invoices = invoices
	return nil
}

// RefreshInvoices re-fetches only the invoice list.
func (v *ViewState) RefreshInvoices(ctx context.Context) error {
	invoices, err := v.api.ListInvoices(ctx)
	if err != nil {
		return err
	}
	v.Invoices = invoices
	return nil
}

// DeleteInvoice removes an invoice on the server and refreshes the list
// only after the server confirms. A failed delete leaves the list as is.
func (v *ViewState) DeleteInvoice(ctx context.Context, id int64) error {
	if err := v.api.DeleteInvoice(ctx, id); err != nil {
		return err
	}
	return v.RefreshInvoices(ctx)
}
