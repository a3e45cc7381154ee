// Package client is a typed HTTP client for the VetApp API. Responses are
// unwrapped from the {"data": ...} envelope; non-2xx responses become
// *ServiceError with the server's {"message": ...} text, and transport or
// decoding failures become *NetworkError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vetapp-api/internal/models"
	"vetapp-api/internal/transport/dto"
)

const genericErrorMessage = "The request could not be completed"

// Client talks to one VetApp API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL (e.g. http://localhost:8080/api).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient creates a Client with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// envelope matches both response shapes; only one side is set per response.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do issues the request and decodes the envelope into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{Op: op, Err: err}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Use the server's message when the body carries one; fall back to
		// generic text on an absent or malformed body.
		msg := genericErrorMessage
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
			msg = env.Message
		}
		return &ServiceError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("malformed response body: %w", err)}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("malformed data payload: %w", err)}
	}
	return nil
}

// ListOwners retrieves all registered owners.
func (c *Client) ListOwners(ctx context.Context) ([]models.Owner, error) {
	var owners []models.Owner
	if err := c.do(ctx, http.MethodGet, "/owners", nil, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// ListPets retrieves pets, optionally filtered to one owner.
func (c *Client) ListPets(ctx context.Context, ownerID *int64) ([]models.Pet, error) {
	path := "/pets"
	if ownerID != nil {
		path += "?ownerId=" + strconv.FormatInt(*ownerID, 10)
	}
	var pets []models.Pet
	if err := c.do(ctx, http.MethodGet, path, nil, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

// ListAppointments retrieves all appointments.
func (c *Client) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// ListInvoices retrieves all invoices, newest first.
func (c *Client) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices", nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice retrieves one invoice with its items.
func (c *Client) GetInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	var inv models.Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices/"+strconv.FormatInt(id, 10), nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// CreateInvoice submits a creation request and returns the canonical invoice.
func (c *Client) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	var inv models.Invoice
	if err := c.do(ctx, http.MethodPost, "/invoices", req, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInvoiceStatus transitions an invoice to the given status.
func (c *Client) UpdateInvoiceStatus(ctx context.Context, id int64, status string) (*models.Invoice, error) {
	var inv models.Invoice
	body := dto.UpdateInvoiceStatusRequest{Status: status}
	path := "/invoices/" + strconv.FormatInt(id, 10) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, body, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// DeleteInvoice removes an invoice. Unknown IDs are an error, not a no-op.
func (c *Client) DeleteInvoice(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/invoices/"+strconv.FormatInt(id, 10), nil, nil)
}
