package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vetapp-api/internal/api/handlers"
	"vetapp-api/internal/api/routes"
	"vetapp-api/internal/models"
	"vetapp-api/internal/services"
	"vetapp-api/internal/transport/dto"
)

// MockInvoiceHandler is a mock implementation of InvoiceHandlerInterface
type MockInvoiceHandler struct {
	mock.Mock
}

func (m *MockInvoiceHandler) GetInvoices(c *gin.Context) {
	m.Called(c)
}

func (m *MockInvoiceHandler) GetInvoiceByID(c *gin.Context) {
	m.Called(c)
}

func (m *MockInvoiceHandler) CreateInvoice(c *gin.Context) {
	m.Called(c)
}

func (m *MockInvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	m.Called(c)
}

func (m *MockInvoiceHandler) DeleteInvoice(c *gin.Context) {
	m.Called(c)
}

// Ensure MockInvoiceHandler implements the interface (compile-time check)
var _ handlers.InvoiceHandlerInterface = (*MockInvoiceHandler)(nil)

// MockInvoiceService is a mock type for the services.InvoiceService interface
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetAll(ctx context.Context) ([]models.Invoice, error) {
	args := m.Called(ctx)
	if invoices, ok := args.Get(0).([]models.Invoice); ok {
		return invoices, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return nil, errors.New("mock return value type mismatch for []models.Invoice")
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) UpdateStatus(ctx context.Context, req *dto.UpdateInvoiceStatusRequest) (*models.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ services.InvoiceService = (*MockInvoiceService)(nil)

func setupTestRouterWithInvoiceMocks() (*gin.Engine, *MockInvoiceService, *handlers.InvoiceHandler) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockInvoiceService)
	validate := validator.New()
	handler := handlers.NewInvoiceHandler(mockService, validate)
	router := gin.New()
	return router, mockService, handler
}

func sampleInvoice() *models.Invoice {
	return &models.Invoice{
		ID:            1,
		InvoiceNumber: "F-AB12CD34",
		OwnerID:       7,
		OwnerName:     "Laura Gómez",
		OwnerEmail:    "laura@example.com",
		PetID:         3,
		PetName:       "Rocky",
		IssuedAt:      time.Now(),
		Items: []models.InvoiceItem{
			{Description: "Consultation", Quantity: 1, UnitPrice: decimal.NewFromInt(80000), LineSubtotal: decimal.NewFromInt(80000)},
			{Description: "Vaccine", Quantity: 2, UnitPrice: decimal.NewFromInt(15000), LineSubtotal: decimal.NewFromInt(30000)},
		},
		Subtotal:  decimal.NewFromInt(110000),
		TaxRate:   decimal.NewFromInt(19),
		TaxAmount: decimal.NewFromInt(20900),
		Total:     decimal.NewFromInt(130900),
		Status:    models.InvoicePending,
	}
}

func TestRegisterInvoiceRoutes(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockInvoiceHandler)

	router := gin.New()
	testGroup := router.Group("/api")

	// Act
	routes.RegisterInvoiceRoutes(testGroup, mockHandler)

	// Assert
	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodGet, "/api/invoices"},
		{http.MethodGet, "/api/invoices/:id"},
		{http.MethodPost, "/api/invoices"},
		{http.MethodPatch, "/api/invoices/:id/status"},
		{http.MethodDelete, "/api/invoices/:id"},
	}

	registeredRoutes := router.Routes()
	registeredMap := make(map[string]bool)
	for _, routeInfo := range registeredRoutes {
		registeredMap[routeInfo.Method+" "+routeInfo.Path] = true
	}

	assert.Len(t, registeredRoutes, len(expectedRoutes), "Number of registered routes should match expected")
	for _, expected := range expectedRoutes {
		assert.True(t, registeredMap[expected.Method+" "+expected.Path], "Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestInvoiceHandler_GetInvoices(t *testing.T) {
	router, mockService, handler := setupTestRouterWithInvoiceMocks()
	router.GET("/invoices", handler.GetInvoices)

	t.Run("Success", func(t *testing.T) {
		expected := []models.Invoice{*sampleInvoice()}
		mockService.On("GetAll", mock.Anything).Return(expected, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/invoices", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			Data []models.Invoice `json:"data"`
		}
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response.Data, 1)
		assert.Equal(t, "F-AB12CD34", response.Data[0].InvoiceNumber)
		assert.True(t, response.Data[0].Total.Equal(decimal.NewFromInt(130900)))
		mockService.AssertExpectations(t)
	})

	t.Run("Service Error", func(t *testing.T) {
		mockService.On("GetAll", mock.Anything).Return(nil, errors.New("database down")).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/invoices", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		mockService.AssertExpectations(t)
	})
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	router, mockService, handler := setupTestRouterWithInvoiceMocks()
	router.POST("/invoices", handler.CreateInvoice)

	validBody := dto.CreateInvoiceRequest{
		OwnerID: 7,
		PetID:   3,
		Detalles: []dto.LineItemRequest{
			{Descripcion: "Consultation", Cantidad: 1, PrecioUnitario: decimal.NewFromInt(80000)},
			{Descripcion: "Vaccine", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(15000)},
		},
	}

	t.Run("Success", func(t *testing.T) {
		expected := sampleInvoice()
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateInvoiceRequest) bool {
			return req.OwnerID == 7 && req.PetID == 3 && len(req.Detalles) == 2
		})).Return(expected, nil).Once()

		payload, _ := json.Marshal(validBody)
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response struct {
			Data models.Invoice `json:"data"`
		}
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "F-AB12CD34", response.Data.InvoiceNumber)
		assert.True(t, response.Data.Subtotal.Equal(decimal.NewFromInt(110000)))
		assert.True(t, response.Data.TaxAmount.Equal(decimal.NewFromInt(20900)))
		mockService.AssertExpectations(t)
	})

	t.Run("Validation Error - No Items", func(t *testing.T) {
		body := validBody
		body.Detalles = nil

		payload, _ := json.Marshal(body)
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Validation Error - Zero Quantity", func(t *testing.T) {
		body := validBody
		body.Detalles = []dto.LineItemRequest{
			{Descripcion: "Consultation", Cantidad: 0, PrecioUnitario: decimal.NewFromInt(80000)},
		}

		payload, _ := json.Marshal(body)
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Owner Not Found", func(t *testing.T) {
		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, services.ErrNotFound).Once()

		payload, _ := json.Marshal(validBody)
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Pet Owner Mismatch", func(t *testing.T) {
		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, services.ErrOwnerMismatch).Once()

		payload, _ := json.Marshal(validBody)
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertExpectations(t)
	})
}

func TestInvoiceHandler_UpdateInvoiceStatus(t *testing.T) {
	router, mockService, handler := setupTestRouterWithInvoiceMocks()
	router.PATCH("/invoices/:id/status", handler.UpdateInvoiceStatus)

	t.Run("Success", func(t *testing.T) {
		paid := sampleInvoice()
		paid.Status = models.InvoicePaid
		mockService.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(req *dto.UpdateInvoiceStatusRequest) bool {
			return req.ID == 1 && req.Status == "PAID"
		})).Return(paid, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/invoices/1/status", bytes.NewBufferString(`{"status":"PAID"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid Target Status", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/invoices/1/status", bytes.NewBufferString(`{"status":"SHIPPED"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Invalid Transition", func(t *testing.T) {
		mockService.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil, services.ErrInvalidTransition).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/invoices/1/status", bytes.NewBufferString(`{"status":"CANCELLED"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertExpectations(t)
	})
}

func TestInvoiceHandler_DeleteInvoice(t *testing.T) {
	router, mockService, handler := setupTestRouterWithInvoiceMocks()
	router.DELETE("/invoices/:id", handler.DeleteInvoice)

	t.Run("Success", func(t *testing.T) {
		mockService.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodDelete, "/invoices/1", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService.On("Delete", mock.Anything, int64(99)).Return(services.ErrNotFound).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodDelete, "/invoices/99", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var response map[string]string
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.NotEmpty(t, response["message"])
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodDelete, "/invoices/abc", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Delete")
	})
}
