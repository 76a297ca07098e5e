package reservation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/Domenick1991/riverbooking/internal/domain"
	"github.com/Domenick1991/riverbooking/internal/kafka"
	"github.com/Domenick1991/riverbooking/internal/repository"
	"github.com/google/uuid"
)

type ReservationUseCase interface {
	Book(ctx context.Context, input BookReservationInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	ListByTravelDate(ctx context.Context) ([]domain.Reservation, error)
}

type Cache interface {
	InvalidateDate(ctx context.Context, travelDate string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReservationService struct {
	reservations repository.ReservationRepository
	catalog      *domain.Catalog
	cache        Cache
	producer     Producer
	eventsTopic  string
}

type BookReservationInput struct {
	Origin        string               `json:"origin"`
	Destination   string               `json:"destination"`
	TravelDate    string               `json:"travel_date"`
	SuiteCategory domain.SuiteCategory `json:"suite_category"`
	SuiteID       string               `json:"suite_id"`
	Passengers    []domain.Passenger   `json:"passengers"`
	Phone         string               `json:"phone"`
	TotalCents    int64                `json:"total_cents"`
	DepositCents  int64                `json:"deposit_cents"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	PaymentDate   string               `json:"payment_date"`
}

func NewReservationService(
	reservations repository.ReservationRepository,
	catalog *domain.Catalog,
	cache Cache,
	producer Producer,
	eventsTopic string,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		catalog:      catalog,
		cache:        cache,
		producer:     producer,
		eventsTopic:  eventsTopic,
	}
}

// Book validates the whole draft before touching the store. The suite/date
// conflict itself is not pre-checked here: the repository decides it
// atomically at insert time, so two racing bookings cannot both pass an
// early check and then both commit.
func (s *ReservationService) Book(ctx context.Context, input BookReservationInput) (*domain.Reservation, error) {
	if err := s.validateDraft(input); err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		ID:            uuid.NewString(),
		Origin:        input.Origin,
		Destination:   input.Destination,
		TravelDate:    input.TravelDate,
		SuiteCategory: input.SuiteCategory,
		SuiteID:       input.SuiteID,
		Passengers:    input.Passengers,
		Phone:         input.Phone,
		TotalCents:    input.TotalCents,
		DepositCents:  input.DepositCents,
		PaymentMethod: input.PaymentMethod,
		PaymentDate:   input.PaymentDate,
	}

	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.invalidateDate(ctx, reservation.TravelDate)
	s.publish(ctx, "reservation_created", reservation)
	return reservation, nil
}

// Cancel flips a confirmed reservation to cancelled and reports whether a
// change happened. Unknown ids and already-cancelled reservations return
// false without an error.
func (s *ReservationService) Cancel(ctx context.Context, id string) (bool, error) {
	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	changed, err := s.reservations.Cancel(ctx, id)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	current.Status = domain.ReservationStatusCancelled
	s.invalidateDate(ctx, current.TravelDate)
	s.publish(ctx, "reservation_cancelled", current)
	return true, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// ListByTravelDate returns confirmed reservations in ascending travel date
// order. Stored dates are DD/MM/YYYY text, so each one is parsed into a
// calendar value before comparing; sorting the raw strings would put
// 01/01/2026 ahead of 20/11/2025.
func (s *ReservationService) ListByTravelDate(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.reservations.ListConfirmed(ctx)
	if err != nil {
		return nil, err
	}

	type dated struct {
		reservation domain.Reservation
		travel      time.Time
	}
	rows := make([]dated, len(reservations))
	for i, r := range reservations {
		d, err := domain.ParseTravelDate(r.TravelDate)
		if err != nil {
			// Rows with a malformed stored date sort last rather than
			// poisoning the whole listing.
			d = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		}
		rows[i] = dated{reservation: r, travel: d}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].travel.Before(rows[j].travel)
	})

	ordered := make([]domain.Reservation, len(rows))
	for i, row := range rows {
		ordered[i] = row.reservation
	}
	return ordered, nil
}

func (s *ReservationService) validateDraft(input BookReservationInput) error {
	if input.Origin == "" {
		return fmt.Errorf("%w: origin is required", domain.ErrInvalidInput)
	}
	if input.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrInvalidInput)
	}
	if _, err := domain.ParseTravelDate(input.TravelDate); err != nil {
		return fmt.Errorf("%w: travel date must be DD/MM/YYYY", domain.ErrInvalidInput)
	}
	if len(input.Passengers) == 0 {
		return fmt.Errorf("%w: at least one passenger is required", domain.ErrInvalidInput)
	}
	for _, p := range input.Passengers {
		if p.Name == "" {
			return fmt.Errorf("%w: passenger name is required", domain.ErrInvalidInput)
		}
		if _, err := domain.ParseTravelDate(p.BirthDate); err != nil {
			return fmt.Errorf("%w: passenger birth date must be DD/MM/YYYY", domain.ErrInvalidInput)
		}
	}
	if input.Phone == "" {
		return fmt.Errorf("%w: phone is required", domain.ErrInvalidInput)
	}
	if input.TotalCents < 0 {
		return fmt.Errorf("%w: total must not be negative", domain.ErrInvalidInput)
	}
	if input.DepositCents < 0 {
		return fmt.Errorf("%w: deposit must not be negative", domain.ErrInvalidInput)
	}
	switch input.PaymentMethod {
	case domain.PaymentMethodPix, domain.PaymentMethodDebit, domain.PaymentMethodCredit, domain.PaymentMethodCash:
	default:
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidInput, input.PaymentMethod)
	}
	if _, err := domain.ParseTravelDate(input.PaymentDate); err != nil {
		return fmt.Errorf("%w: payment date must be DD/MM/YYYY", domain.ErrInvalidInput)
	}

	info, err := s.catalog.InfoOf(input.SuiteID)
	if err != nil {
		return fmt.Errorf("%w: unknown suite %q", domain.ErrInvalidInput, input.SuiteID)
	}
	if info.Category != input.SuiteCategory {
		return fmt.Errorf("%w: suite %s does not belong to category %s", domain.ErrInvalidInput, input.SuiteID, input.SuiteCategory)
	}
	return nil
}

func (s *ReservationService) invalidateDate(ctx context.Context, travelDate string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDate(ctx, travelDate); err != nil {
		log.Printf("invalidate occupancy cache for %s: %v", travelDate, err)
	}
}

func (s *ReservationService) publish(ctx context.Context, eventType string, reservation *domain.Reservation) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		Type:           eventType,
		ReservationID:  reservation.ID,
		Origin:         reservation.Origin,
		Destination:    reservation.Destination,
		TravelDate:     reservation.TravelDate,
		SuiteCategory:  string(reservation.SuiteCategory),
		SuiteID:        reservation.SuiteID,
		Phone:          reservation.Phone,
		PassengerCount: len(reservation.Passengers),
		TotalCents:     reservation.TotalCents,
		Status:         string(reservation.Status),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, reservation.ID, event); err != nil {
		log.Printf("publish %s event for reservation %s: %v", eventType, reservation.ID, err)
	}
}

var _ ReservationUseCase = (*ReservationService)(nil)
