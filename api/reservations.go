package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/riverbooking/internal/domain"
	"github.com/Domenick1991/riverbooking/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service reservation.ReservationUseCase
}

type passengerPayload struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

type bookReservationRequest struct {
	Origin        string             `json:"origin"`
	Destination   string             `json:"destination"`
	TravelDate    string             `json:"travel_date"`
	SuiteCategory string             `json:"suite_category"`
	SuiteID       string             `json:"suite_id"`
	Passengers    []passengerPayload `json:"passengers"`
	Phone         string             `json:"phone"`
	TotalCents    int64              `json:"total_cents"`
	DepositCents  int64              `json:"deposit_cents"`
	PaymentMethod string             `json:"payment_method"`
	PaymentDate   string             `json:"payment_date"`
}

type reservationResponse struct {
	ID            string             `json:"id"`
	CreatedAt     string             `json:"created_at"`
	Origin        string             `json:"origin"`
	Destination   string             `json:"destination"`
	TravelDate    string             `json:"travel_date"`
	SuiteCategory string             `json:"suite_category"`
	SuiteID       string             `json:"suite_id"`
	Passengers    []passengerPayload `json:"passengers"`
	Phone         string             `json:"phone"`
	TotalCents    int64              `json:"total_cents"`
	DepositCents  int64              `json:"deposit_cents"`
	PaymentMethod string             `json:"payment_method"`
	PaymentDate   string             `json:"payment_date"`
	Status        string             `json:"status"`
}

type reservationRow struct {
	ID             string `json:"id"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	TravelDate     string `json:"travel_date"`
	SuiteCategory  string `json:"suite_category"`
	SuiteID        string `json:"suite_id"`
	PassengerCount int    `json:"passenger_count"`
	TotalCents     int64  `json:"total_cents"`
	PaymentMethod  string `json:"payment_method"`
}

func NewReservationHandler(service reservation.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.book)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.cancel)
}

func (h *ReservationHandler) book(c *gin.Context) {
	var req bookReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passengers := make([]domain.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, domain.Passenger{Name: p.Name, BirthDate: p.BirthDate})
	}

	created, err := h.service.Book(c.Request.Context(), reservation.BookReservationInput{
		Origin:        req.Origin,
		Destination:   req.Destination,
		TravelDate:    req.TravelDate,
		SuiteCategory: domain.SuiteCategory(req.SuiteCategory),
		SuiteID:       req.SuiteID,
		Passengers:    passengers,
		Phone:         req.Phone,
		TotalCents:    req.TotalCents,
		DepositCents:  req.DepositCents,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PaymentDate:   req.PaymentDate,
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrSuiteTaken):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toReservationResponse(created))
}

func (h *ReservationHandler) list(c *gin.Context) {
	reservations, err := h.service.ListByTravelDate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := make([]reservationRow, 0, len(reservations))
	for _, r := range reservations {
		rows = append(rows, reservationRow{
			ID:             r.ID,
			Origin:         r.Origin,
			Destination:    r.Destination,
			TravelDate:     r.TravelDate,
			SuiteCategory:  string(r.SuiteCategory),
			SuiteID:        r.SuiteID,
			PassengerCount: len(r.Passengers),
			TotalCents:     r.TotalCents,
			PaymentMethod:  string(r.PaymentMethod),
		})
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReservationHandler) get(c *gin.Context) {
	found, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(found))
}

func (h *ReservationHandler) cancel(c *gin.Context) {
	cancelled, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// cancelled=false is a report (unknown id or already cancelled), not a failure.
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}

func toReservationResponse(r *domain.Reservation) reservationResponse {
	passengers := make([]passengerPayload, 0, len(r.Passengers))
	for _, p := range r.Passengers {
		passengers = append(passengers, passengerPayload{Name: p.Name, BirthDate: p.BirthDate})
	}
	return reservationResponse{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		Origin:        r.Origin,
		Destination:   r.Destination,
		TravelDate:    r.TravelDate,
		SuiteCategory: string(r.SuiteCategory),
		SuiteID:       r.SuiteID,
		Passengers:    passengers,
		Phone:         r.Phone,
		TotalCents:    r.TotalCents,
		DepositCents:  r.DepositCents,
		PaymentMethod: string(r.PaymentMethod),
		PaymentDate:   r.PaymentDate,
		Status:        string(r.Status),
	}
}
