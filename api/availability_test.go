package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/riverbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAvailabilityUseCase struct {
	mock.Mock
}

func (m *MockAvailabilityUseCase) Available(ctx context.Context, travelDate string, category domain.SuiteCategory) ([]domain.Suite, error) {
	args := m.Called(ctx, travelDate, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Suite), args.Error(1)
}

func TestAvailabilityHandler_available(t *testing.T) {
	mockService := &MockAvailabilityUseCase{}
	handler := NewAvailabilityHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/availability?travel_date=15/08/2025&category=BALCONY", nil)

	mockService.On("Available", c.Request.Context(), "15/08/2025", domain.SuiteCategoryBalcony).Return([]domain.Suite{
		{ID: "202", Category: domain.SuiteCategoryBalcony, PriceCents: 120000, HasBalcony: true},
		{ID: "203", Category: domain.SuiteCategoryBalcony, PriceCents: 120000, HasBalcony: true},
	}, nil)

	handler.available(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var rows []suiteResponse
	err := json.Unmarshal(w.Body.Bytes(), &rows)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "202", rows[0].SuiteID)
	assert.Equal(t, int64(120000), rows[0].PriceCents)
	assert.True(t, rows[0].HasBalcony)

	mockService.AssertExpectations(t)
}

func TestAvailabilityHandler_available_Empty(t *testing.T) {
	mockService := &MockAvailabilityUseCase{}
	handler := NewAvailabilityHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/availability?travel_date=15/08/2025&category=FAMILY", nil)

	mockService.On("Available", c.Request.Context(), "15/08/2025", domain.SuiteCategoryFamily).
		Return([]domain.Suite{}, nil)

	handler.available(c)

	// Sold out renders as an empty list, not an error.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestAvailabilityHandler_available_MissingParams(t *testing.T) {
	mockService := &MockAvailabilityUseCase{}
	handler := NewAvailabilityHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/availability?travel_date=15/08/2025", nil)

	handler.available(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Available", mock.Anything, mock.Anything, mock.Anything)
}

func TestAvailabilityHandler_available_MalformedDate(t *testing.T) {
	mockService := &MockAvailabilityUseCase{}
	handler := NewAvailabilityHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/availability?travel_date=2025-08-15&category=BALCONY", nil)

	mockService.On("Available", c.Request.Context(), "2025-08-15", domain.SuiteCategoryBalcony).
		Return(nil, domain.ErrInvalidInput)

	handler.available(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
