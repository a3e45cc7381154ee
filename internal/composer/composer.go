// Package composer builds invoice-creation requests from user input. It
// owns the draft: an ordered collection of line-item slots keyed by stable
// identifiers, the selected owner and pet, and the submit flow. No money
// value is ever computed here; totals are the server's job alone.
package composer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"vetapp-api/internal/client"
	"vetapp-api/internal/models"
	"vetapp-api/internal/transport/dto"
)

// ValidationError is a local, pre-submission failure. It never involves
// the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	// ErrNoItems is returned by Submit when no slot is complete.
	ErrNoItems = &ValidationError{Message: "at least one item required"}
	// ErrMissingOwner is returned by Submit when no owner is selected.
	ErrMissingOwner = &ValidationError{Message: "an owner must be selected"}
	// ErrMissingPet is returned by Submit when no pet is selected.
	ErrMissingPet = &ValidationError{Message: "a pet must be selected"}

	// ErrFirstSlot marks an attempt to remove the first slot, which always
	// stays as the draft's entry point.
	ErrFirstSlot = errors.New("the first line item slot cannot be removed")
	// ErrUnknownSlot marks an operation against a slot id not in the draft.
	ErrUnknownSlot = errors.New("unknown line item slot")
	// ErrSubmitInFlight guards against re-entrant submission while a prior
	// request has not settled.
	ErrSubmitInFlight = errors.New("a submission is already in progress")
)

// FieldError is a field-level input rejection at the text boundary.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

// SlotID is a stable opaque identifier for one line-item slot. It never
// changes when neighboring slots are added or removed.
type SlotID int64

// Slot is one editable line-item entry. Quantity and UnitPrice are nil
// until the user's text input has been parsed and accepted.
type Slot struct {
	ID          SlotID
	Description string
	Quantity    *int
	UnitPrice   *decimal.Decimal
}

// complete reports whether the slot carries enough data to become a line
// item. Partially filled slots are pre-staged rows, not errors.
func (s *Slot) complete() bool {
	return strings.TrimSpace(s.Description) != "" && s.Quantity != nil && s.UnitPrice != nil
}

// Composer holds one invoice draft.
type Composer struct {
	api  *client.Client
	view *ViewState

	ownerID *int64
	petID   *int64
	notes   string

	slots  map[SlotID]*Slot
	order  []SlotID
	nextID SlotID

	inFlight atomic.Bool
}

// New creates a Composer with a single empty slot.
func New(api *client.Client, view *ViewState) *Composer {
	c := &Composer{
		api:   api,
		view:  view,
		slots: make(map[SlotID]*Slot),
	}
	c.AddSlot()
	return c
}

// AddSlot appends one empty slot and returns its id.
func (c *Composer) AddSlot() SlotID {
	c.nextID++
	id := c.nextID
	c.slots[id] = &Slot{ID: id}
	c.order = append(c.order, id)
	return id
}

// RemoveSlot removes exactly the given slot. The first slot in display
// order is never removable; sibling slots keep their ids untouched.
func (c *Composer) RemoveSlot(id SlotID) error {
	if _, ok := c.slots[id]; !ok {
		return ErrUnknownSlot
	}
	if len(c.order) > 0 && c.order[0] == id {
		return ErrFirstSlot
	}
	delete(c.slots, id)
	for i, sid := range c.order {
		if sid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Slots returns the slots in display order.
func (c *Composer) Slots() []*Slot {
	out := make([]*Slot, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.slots[id])
	}
	return out
}

// SetDescription updates a slot's description. Empty text clears it.
func (c *Composer) SetDescription(id SlotID, text string) error {
	slot, ok := c.slots[id]
	if !ok {
		return ErrUnknownSlot
	}
	slot.Description = text
	return nil
}

// SetQuantity parses quantity text into the slot. Empty text clears the
// field; non-numeric or sub-1 input is rejected with a FieldError.
func (c *Composer) SetQuantity(id SlotID, text string) error {
	slot, ok := c.slots[id]
	if !ok {
		return ErrUnknownSlot
	}
	text = strings.TrimSpace(text)
	if text == "" {
		slot.Quantity = nil
		return nil
	}
	qty, err := strconv.Atoi(text)
	if err != nil {
		return &FieldError{Field: "cantidad", Message: fmt.Sprintf("%q is not a whole number", text)}
	}
	if qty < 1 {
		return &FieldError{Field: "cantidad", Message: "quantity must be at least 1"}
	}
	slot.Quantity = &qty
	return nil
}

// SetUnitPrice parses unit price text into the slot. Empty text clears the
// field; non-numeric or negative input is rejected with a FieldError.
func (c *Composer) SetUnitPrice(id SlotID, text string) error {
	slot, ok := c.slots[id]
	if !ok {
		return ErrUnknownSlot
	}
	text = strings.TrimSpace(text)
	if text == "" {
		slot.UnitPrice = nil
		return nil
	}
	price, err := decimal.NewFromString(text)
	if err != nil {
		return &FieldError{Field: "precioUnitario", Message: fmt.Sprintf("%q is not a number", text)}
	}
	if price.IsNegative() {
		return &FieldError{Field: "precioUnitario", Message: "unit price cannot be negative"}
	}
	slot.UnitPrice = &price
	return nil
}

// SetNotes updates the draft's free-text notes.
func (c *Composer) SetNotes(text string) {
	c.notes = text
}

// SelectOwner constrains the eligible pets to those owned by ownerID. It
// is a pure filter over the view's cached pet list.
func (c *Composer) SelectOwner(ownerID int64) {
	c.ownerID = &ownerID
	// A pet from another owner is no longer a valid selection.
	if c.petID != nil {
		still := false
		for _, p := range c.EligiblePets() {
			if p.ID == *c.petID {
				still = true
				break
			}
		}
		if !still {
			c.petID = nil
		}
	}
}

// ClearOwner re-admits every cached pet.
func (c *Composer) ClearOwner() {
	c.ownerID = nil
}

// SelectPet records the pet choice.
func (c *Composer) SelectPet(petID int64) {
	c.petID = &petID
}

// EligiblePets returns the cached pets visible under the current owner
// selection. No network access happens here.
func (c *Composer) EligiblePets() []models.Pet {
	if c.ownerID == nil {
		return c.view.Pets
	}
	eligible := []models.Pet{}
	for _, p := range c.view.Pets {
		if p.OwnerID == *c.ownerID {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// completeItems collects the complete slots, in original relative order.
func (c *Composer) completeItems() []dto.LineItemRequest {
	items := []dto.LineItemRequest{}
	for _, id := range c.order {
		slot := c.slots[id]
		if !slot.complete() {
			continue
		}
		items = append(items, dto.LineItemRequest{
			Descripcion:    strings.TrimSpace(slot.Description),
			Cantidad:       *slot.Quantity,
			PrecioUnitario: *slot.UnitPrice,
		})
	}
	return items
}

// reset returns the draft to its initial shape: one empty slot, nothing
// selected.
func (c *Composer) reset() {
	c.slots = make(map[SlotID]*Slot)
	c.order = nil
	c.ownerID = nil
	c.petID = nil
	c.notes = ""
	c.AddSlot()
}

// Submit validates the draft, posts it, and on success resets the draft
// and refreshes the invoice list. On any failure the draft is left fully
// intact so the user can correct and retry.
func (c *Composer) Submit(ctx context.Context) (*models.Invoice, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer c.inFlight.Store(false)

	if c.ownerID == nil {
		return nil, ErrMissingOwner
	}
	if c.petID == nil {
		return nil, ErrMissingPet
	}
	items := c.completeItems()
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	req := &dto.CreateInvoiceRequest{
		OwnerID:  *c.ownerID,
		PetID:    *c.petID,
		Notes:    c.notes,
		Detalles: items,
	}
	inv, err := c.api.CreateInvoice(ctx, req)
	if err != nil {
		return nil, err
	}

	c.reset()
	// List refresh failures do not undo a confirmed creation.
	if err := c.view.RefreshInvoices(ctx); err != nil {
		return inv, nil
	}
	return inv, nil
}
