package composer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetapp-api/internal/billing"
	"vetapp-api/internal/client"
	"vetapp-api/internal/models"
	"vetapp-api/internal/transport/dto"
)

// newBillingStub runs an httptest server that accepts invoice creation,
// computes totals the way the real service does, and records every
// received request body.
func newBillingStub(t *testing.T) (*httptest.Server, *[]dto.CreateInvoiceRequest, *int64) {
	t.Helper()
	var received []dto.CreateInvoiceRequest
	var requestCount int64

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requestCount, 1)
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/invoices":
			var req dto.CreateInvoiceRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			received = append(received, req)

			items := make([]models.InvoiceItem, 0, len(req.Detalles))
			for _, d := range req.Detalles {
				items = append(items, models.InvoiceItem{
					Description: d.Descripcion,
					Quantity:    d.Cantidad,
					UnitPrice:   d.PrecioUnitario,
				})
			}
			taxRate := decimal.NewFromInt(19)
			totals := billing.ComputeTotals(items, taxRate)
			inv := models.Invoice{
				ID:            1,
				InvoiceNumber: "F-00000001",
				OwnerID:       req.OwnerID,
				PetID:         req.PetID,
				IssuedAt:      time.Now(),
				Items:         items,
				Subtotal:      totals.Subtotal,
				TaxRate:       taxRate,
				TaxAmount:     totals.TaxAmount,
				Total:         totals.Total,
				Status:        models.InvoicePending,
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"data": inv})
		case r.Method == http.MethodGet && r.URL.Path == "/invoices":
			json.NewEncoder(w).Encode(map[string]any{"data": []models.Invoice{}})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Resource not found"})
		}
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, &received, &requestCount
}

func seededView(api *client.Client) *ViewState {
	view := NewViewState(api)
	view.Owners = []models.Owner{
		{ID: 7, FirstName: "Laura", LastName: "Gómez"},
		{ID: 8, FirstName: "Andrés", LastName: "Pardo"},
	}
	view.Pets = []models.Pet{
		{ID: 3, Name: "Rocky", OwnerID: 7},
		{ID: 4, Name: "Luna", OwnerID: 7},
		{ID: 5, Name: "Milo", OwnerID: 8},
	}
	return view
}

func mustSetItem(t *testing.T, c *Composer, id SlotID, desc, qty, price string) {
	t.Helper()
	require.NoError(t, c.SetDescription(id, desc))
	require.NoError(t, c.SetQuantity(id, qty))
	require.NoError(t, c.SetUnitPrice(id, price))
}

func TestSubmitCollectsCompleteSlotsInOrder(t *testing.T) {
	srv, received, _ := newBillingStub(t)
	api := client.New(srv.URL)
	c := New(api, seededView(api))

	c.SelectOwner(7)
	c.SelectPet(3)

	// First slot complete, then an incomplete one, two more complete ones,
	// one of which gets removed, and a trailing description-only slot.
	first := c.Slots()[0].ID
	mustSetItem(t, c, first, "Consultation", "1", "80000")

	staged := c.AddSlot()
	require.NoError(t, c.SetDescription(staged, "pre-staged row"))

	second := c.AddSlot()
	mustSetItem(t, c, second, "Vaccine", "2", "15000")

	removed := c.AddSlot()
	mustSetItem(t, c, removed, "Deworming", "1", "25000")
	require.NoError(t, c.RemoveSlot(removed))

	third := c.AddSlot()
	mustSetItem(t, c, third, "Grooming", "1", "30000")

	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, *received, 1)
	detalles := (*received)[0].Detalles
	require.Len(t, detalles, 3)
	assert.Equal(t, "Consultation", detalles[0].Descripcion)
	assert.Equal(t, "Vaccine", detalles[1].Descripcion)
	assert.Equal(t, "Grooming", detalles[2].Descripcion)
	assert.Equal(t, 2, detalles[1].Cantidad)
	assert.True(t, detalles[1].PrecioUnitario.Equal(decimal.NewFromInt(15000)))
}

func TestSubmitResetsDraftOnSuccess(t *testing.T) {
	srv, _, _ := newBillingStub(t)
	api := client.New(srv.URL)
	c := New(api, seededView(api))

	c.SelectOwner(7)
	c.SelectPet(3)
	mustSetItem(t, c, c.Slots()[0].ID, "Consultation", "1", "80000")
	c.AddSlot()

	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	slots := c.Slots()
	require.Len(t, slots, 1)
	assert.Empty(t, slots[0].Description)
	assert.Nil(t, slots[0].Quantity)
	assert.Nil(t, slots[0].UnitPrice)
	assert.Len(t, c.EligiblePets(), 3, "owner selection should be cleared")
}

func TestSubmitWithNoCompleteItems(t *testing.T) {
	srv, _, requestCount := newBillingStub(t)
	api := client.New(srv.URL)
	c := New(api, seededView(api))

	c.SelectOwner(7)
	c.SelectPet(3)

	// Description-only slots are pre-staged rows, not submittable items.
	require.NoError(t, c.SetDescription(c.Slots()[0].ID, "only a description"))
	extra := c.AddSlot()
	require.NoError(t, c.SetQuantity(extra, "2"))

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrNoItems)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Zero(t, atomic.LoadInt64(requestCount), "no network request may be issued")
}

func TestSubmitRequiresOwnerAndPet(t *testing.T) {
	srv, _, requestCount := newBillingStub(t)
	api := client.New(srv.URL)
	c := New(api, seededView(api))
	mustSetItem(t, c, c.Slots()[0].ID, "Consultation", "1", "80000")

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrMissingOwner)

	c.SelectOwner(7)
	_, err = c.Submit(context.Background())
	require.ErrorIs(t, err, ErrMissingPet)

	assert.Zero(t, atomic.LoadInt64(requestCount))
}

func TestSubmitFailureLeavesDraftIntact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "invoice number collision"})
	}))
	defer srv.Close()

	api := client.New(srv.URL)
	c := New(api, seededView(api))
	c.SelectOwner(7)
	c.SelectPet(3)
	mustSetItem(t, c, c.Slots()[0].ID, "Consultation", "1", "80000")

	_, err := c.Submit(context.Background())
	var svcErr *client.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "invoice number collision", svcErr.Message)

	// Everything survives for correction and retry.
	slots := c.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, "Consultation", slots[0].Description)
	require.NotNil(t, slots[0].Quantity)
	assert.Equal(t, 1, *slots[0].Quantity)
}

func TestSubmitGuardsAgainstReentry(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			close(entered)
			<-release
		}
		json.NewEncoder(w).Encode(map[string]any{"data": models.Invoice{}})
	}))
	defer srv.Close()

	api := client.New(srv.URL)
	c := New(api, seededView(api))
	c.SelectOwner(7)
	c.SelectPet(3)
	mustSetItem(t, c, c.Slots()[0].ID, "Consultation", "1", "80000")

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()

	<-entered
	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestRemoveSlotRules(t *testing.T) {
	srv, _, _ := newBillingStub(t)
	api := client.New(srv.URL)
	c := New(api, seededView(api))

	first := c.Slots()[0].ID
	second := c.AddSlot()

	// Removing the only non-first slot leaves exactly the first slot.
	require.NoError(t, c.RemoveSlot(second))
	require.Len(t, c.Slots(), 1)
	assert.Equal(t, first, c.Slots()[0].ID)

	// The first slot is never removable.
	err := c.RemoveSlot(first)
	assert.ErrorIs(t, err, ErrFirstSlot)
	require.Len(t, c.Slots(), 1)

	assert.ErrorIs(t, c.RemoveSlot(SlotID(9999)), ErrUnknownSlot)
}

func TestSlotIdentityStableAcrossRemovals(t *testing.T) {
	srv, _, _ := newBillingStub(t)
	api := client.New(srv.URL)
	c := New(api, seededView(api))

	a := c.Slots()[0].ID
	b := c.AddSlot()
	d := c.AddSlot()
	mustSetItem(t, c, d, "kept", "1", "10")

	require.NoError(t, c.RemoveSlot(b))

	// Slot d keeps its id and data; nothing is renumbered.
	slots := c.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, a, slots[0].ID)
	assert.Equal(t, d, slots[1].ID)
	assert.Equal(t, "kept", slots[1].Description)
}

func TestSelectOwnerFiltersCachedPets(t *testing.T) {
	srv, _, requestCount := newBillingStub(t)
	api := client.New(srv.URL)
	c := New(api, seededView(api))

	c.SelectOwner(7)
	pets := c.EligiblePets()
	require.Len(t, pets, 2)
	for _, p := range pets {
		assert.Equal(t, int64(7), p.OwnerID)
	}

	c.ClearOwner()
	assert.Len(t, c.EligiblePets(), 3)

	// Filtering is pure; the stub must never have been contacted.
	assert.Zero(t, atomic.LoadInt64(requestCount))
}

func TestSelectOwnerDropsForeignPetSelection(t *testing.T) {
	srv, _, _ := newBillingStub(t)
	api := client.New(srv.URL)
	c := New(api, seededView(api))

	c.SelectPet(5) // Milo, owner 8
	c.SelectOwner(7)
	mustSetItem(t, c, c.Slots()[0].ID, "Consultation", "1", "80000")

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrMissingPet)
}

func TestBoundaryParsing(t *testing.T) {
	srv, _, _ := newBillingStub(t)
	api := client.New(srv.URL)
	c := New(api, seededView(api))
	id := c.Slots()[0].ID

	tests := []struct {
		name    string
		set     func() error
		wantErr bool
	}{
		{"valid quantity", func() error { return c.SetQuantity(id, "3") }, false},
		{"non-numeric quantity", func() error { return c.SetQuantity(id, "abc") }, true},
		{"zero quantity", func() error { return c.SetQuantity(id, "0") }, true},
		{"negative quantity", func() error { return c.SetQuantity(id, "-2") }, true},
		{"valid price", func() error { return c.SetUnitPrice(id, "15000") }, false},
		{"decimal price", func() error { return c.SetUnitPrice(id, "15000.50") }, false},
		{"zero price", func() error { return c.SetUnitPrice(id, "0") }, false},
		{"non-numeric price", func() error { return c.SetUnitPrice(id, "free") }, true},
		{"negative price", func() error { return c.SetUnitPrice(id, "-1") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set()
			if tt.wantErr {
				var fieldErr *FieldError
				require.Error(t, err)
				assert.True(t, errors.As(err, &fieldErr))
			} else {
				assert.NoError(t, err)
			}
		})
	}

	// Empty text clears a previously set field.
	require.NoError(t, c.SetQuantity(id, "3"))
	require.NoError(t, c.SetQuantity(id, ""))
	assert.Nil(t, c.Slots()[0].Quantity)
}

func TestSubmitScenarioTotals(t *testing.T) {
	srv, _, _ := newBillingStub(t)
	api := client.New(srv.URL)
	c := New(api, seededView(api))

	c.SelectOwner(7)
	c.SelectPet(3)
	mustSetItem(t, c, c.Slots()[0].ID, "Consultation", "1", "80000")
	second := c.AddSlot()
	mustSetItem(t, c, second, "Vaccine", "2", "15000")

	inv, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(110000)), "subtotal = %s", inv.Subtotal)
	assert.True(t, inv.TaxAmount.Equal(decimal.NewFromInt(20900)), "taxAmount = %s", inv.TaxAmount)
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(130900)), "total = %s", inv.Total)
}
