package composer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetapp-api/internal/client"
	"vetapp-api/internal/models"
)

func TestDeleteInvoiceFailureLeavesListUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "invoice not found"})
			return
		}
		t.Errorf("unexpected %s %s after failed delete", r.Method, r.URL.Path)
	}))
	defer srv.Close()

	view := NewViewState(client.New(srv.URL))
	view.Invoices = []models.Invoice{
		{ID: 1, InvoiceNumber: "F-11111111"},
		{ID: 2, InvoiceNumber: "F-22222222"},
	}

	err := view.DeleteInvoice(context.Background(), 424242)
	var svcErr *client.ServiceError
	require.ErrorAs(t, err, &svcErr)

	// No optimistic removal: the cached list still holds both entries.
	require.Len(t, view.Invoices, 2)
	assert.Equal(t, int64(1), view.Invoices[0].ID)
	assert.Equal(t, int64(2), view.Invoices[1].ID)
}

func TestDeleteInvoiceRefreshesAfterConfirmation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]any{"data": map[string]bool{"deleted": true}})
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"data": []models.Invoice{
				{ID: 2, InvoiceNumber: "F-22222222"},
			}})
		}
	}))
	defer srv.Close()

	view := NewViewState(client.New(srv.URL))
	view.Invoices = []models.Invoice{
		{ID: 1, InvoiceNumber: "F-11111111"},
		{ID: 2, InvoiceNumber: "F-22222222"},
	}

	require.NoError(t, view.DeleteInvoice(context.Background(), 1))
	require.Len(t, view.Invoices, 1)
	assert.Equal(t, int64(2), view.Invoices[0].ID)
}

func TestEnterLoadsAllLists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/owners":
			json.NewEncoder(w).Encode(map[string]any{"data": []models.Owner{{ID: 7}}})
		case "/pets":
			json.NewEncoder(w).Encode(map[string]any{"data": []models.Pet{{ID: 3, OwnerID: 7}}})
		case "/invoices":
			json.NewEncoder(w).Encode(map[string]any{"data": []models.Invoice{{ID: 1}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	view := NewViewState(client.New(srv.URL))
	require.NoError(t, view.Enter(context.Background()))
	assert.Len(t, view.Owners, 1)
	assert.Len(t, view.Pets, 1)
	assert.Len(t, view.Invoices, 1)
}
