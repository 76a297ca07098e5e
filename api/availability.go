package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/riverbooking/internal/domain"
	"github.com/Domenick1991/riverbooking/internal/service/availability"
	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	service availability.AvailabilityUseCase
}

type suiteResponse struct {
	SuiteID    string `json:"suite_id"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
	HasBalcony bool   `json:"has_balcony"`
	Accessible bool   `json:"accessible"`
}

func NewAvailabilityHandler(service availability.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

func (h *AvailabilityHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.available)
}

func (h *AvailabilityHandler) available(c *gin.Context) {
	travelDate := c.Query("travel_date")
	category := c.Query("category")
	if travelDate == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "travel_date and category are required"})
		return
	}

	suites, err := h.service.Available(c.Request.Context(), travelDate, domain.SuiteCategory(category))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// An empty list is a valid answer: no availability.
	rows := make([]suiteResponse, 0, len(suites))
	for _, s := range suites {
		rows = append(rows, suiteResponse{
			SuiteID:    s.ID,
			Category:   string(s.Category),
			PriceCents: s.PriceCents,
			HasBalcony: s.HasBalcony,
			Accessible: s.Accessible,
		})
	}
	c.JSON(http.StatusOK, rows)
}
