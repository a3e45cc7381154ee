package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vetapp-api/internal/api/handlers"
	"vetapp-api/internal/api/routes"
	"vetapp-api/internal/models"
	"vetapp-api/internal/services"
	"vetapp-api/internal/transport/dto"
)

// MockOwnerHandler is a mock implementation of OwnerHandlerInterface
type MockOwnerHandler struct {
	mock.Mock
}

func (m *MockOwnerHandler) GetOwners(c *gin.Context) {
	m.Called(c)
}

func (m *MockOwnerHandler) GetOwnerByID(c *gin.Context) {
	m.Called(c)
}

func (m *MockOwnerHandler) CreateOwner(c *gin.Context) {
	m.Called(c)
}

func (m *MockOwnerHandler) UpdateOwner(c *gin.Context) {
	m.Called(c)
}

func (m *MockOwnerHandler) DeleteOwner(c *gin.Context) {
	m.Called(c)
}

var _ handlers.OwnerHandlerInterface = (*MockOwnerHandler)(nil)

// MockOwnerService is a mock type for the services.OwnerService interface
type MockOwnerService struct {
	mock.Mock
}

func (m *MockOwnerService) GetAll(ctx context.Context) ([]models.Owner, error) {
	args := m.Called(ctx)
	if owners, ok := args.Get(0).([]models.Owner); ok {
		return owners, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return nil, errors.New("mock return value type mismatch for []models.Owner")
}

func (m *MockOwnerService) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Owner), args.Error(1)
}

func (m *MockOwnerService) Create(ctx context.Context, req *dto.CreateOwnerRequest) (*models.Owner, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Owner), args.Error(1)
}

func (m *MockOwnerService) Update(ctx context.Context, req *dto.UpdateOwnerRequest) (*models.Owner, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Owner), args.Error(1)
}

func (m *MockOwnerService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ services.OwnerService = (*MockOwnerService)(nil)

func setupTestRouterWithOwnerMocks() (*gin.Engine, *MockOwnerService, *handlers.OwnerHandler) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockOwnerService)
	validate := validator.New()
	handler := handlers.NewOwnerHandler(mockService, validate)
	router := gin.New()
	return router, mockService, handler
}

func TestRegisterOwnerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockOwnerHandler)
	router := gin.New()
	testGroup := router.Group("/api")

	routes.RegisterOwnerRoutes(testGroup, mockHandler)

	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodGet, "/api/owners"},
		{http.MethodGet, "/api/owners/:id"},
		{http.MethodPost, "/api/owners"},
		{http.MethodPut, "/api/owners/:id"},
		{http.MethodDelete, "/api/owners/:id"},
	}

	registeredMap := make(map[string]bool)
	for _, routeInfo := range router.Routes() {
		registeredMap[routeInfo.Method+" "+routeInfo.Path] = true
	}

	assert.Len(t, router.Routes(), len(expectedRoutes), "Number of registered routes should match expected")
	for _, expected := range expectedRoutes {
		assert.True(t, registeredMap[expected.Method+" "+expected.Path], "Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestOwnerHandler_GetOwners(t *testing.T) {
	router, mockService, handler := setupTestRouterWithOwnerMocks()
	router.GET("/owners", handler.GetOwners)

	t.Run("Success", func(t *testing.T) {
		expected := []models.Owner{
			{ID: 1, FirstName: "Laura", LastName: "Gómez", Document: "1012345678", Email: "laura@example.com"},
			{ID: 2, FirstName: "Andrés", LastName: "Pardo", Document: "1087654321", Email: "andres@example.com"},
		}
		mockService.On("GetAll", mock.Anything).Return(expected, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/owners", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			Data []models.Owner `json:"data"`
		}
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response.Data, 2)
		assert.Equal(t, "Laura", response.Data[0].FirstName)
		mockService.AssertExpectations(t)
	})
}

func TestOwnerHandler_CreateOwner(t *testing.T) {
	router, mockService, handler := setupTestRouterWithOwnerMocks()
	router.POST("/owners", handler.CreateOwner)

	validBody := dto.CreateOwnerRequest{
		FirstName: "Laura",
		LastName:  "Gómez",
		Document:  "1012345678",
		Phone:     "3001234567",
		Email:     "laura@example.com",
		Address:   "Calle 45 #12-34",
	}

	t.Run("Success", func(t *testing.T) {
		expected := &models.Owner{ID: 1, FirstName: "Laura", LastName: "Gómez", Document: "1012345678", Email: "laura@example.com"}
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateOwnerRequest) bool {
			return req.Document == "1012345678"
		})).Return(expected, nil).Once()

		payload, _ := json.Marshal(validBody)
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/owners", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Duplicate Document", func(t *testing.T) {
		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("owner with this document or email already exists: %w", services.ErrConflict)).Once()

		payload, _ := json.Marshal(validBody)
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/owners", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Validation Error - Bad Email", func(t *testing.T) {
		body := validBody
		body.Email = "not-an-email"

		payload, _ := json.Marshal(body)
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/owners", bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestOwnerHandler_DeleteOwner(t *testing.T) {
	router, mockService, handler := setupTestRouterWithOwnerMocks()
	router.DELETE("/owners/:id", handler.DeleteOwner)

	t.Run("Not Found", func(t *testing.T) {
		mockService.On("Delete", mock.Anything, int64(42)).Return(services.ErrNotFound).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodDelete, "/owners/42", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockService.AssertExpectations(t)
	})
}
