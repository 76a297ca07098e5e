package availability

import (
	"context"
	"fmt"

	"github.com/Domenick1991/riverbooking/internal/domain"
	"github.com/Domenick1991/riverbooking/internal/repository"
)

type AvailabilityUseCase interface {
	Available(ctx context.Context, travelDate string, category domain.SuiteCategory) ([]domain.Suite, error)
}

type Cache interface {
	GetOccupied(ctx context.Context, travelDate string) ([]string, error)
	SetOccupied(ctx context.Context, travelDate string, suiteIDs []string) error
}

type AvailabilityService struct {
	reservations repository.ReservationRepository
	catalog      *domain.Catalog
	cache        Cache
}

func NewAvailabilityService(reservations repository.ReservationRepository, catalog *domain.Catalog, cache Cache) *AvailabilityService {
	return &AvailabilityService{reservations: reservations, catalog: catalog, cache: cache}
}

// Available returns the free suites of a category on a travel date, in the
// catalog's declared order. An empty result means the category is sold out
// (or unknown); it is not an error.
func (s *AvailabilityService) Available(ctx context.Context, travelDate string, category domain.SuiteCategory) ([]domain.Suite, error) {
	if _, err := domain.ParseTravelDate(travelDate); err != nil {
		return nil, fmt.Errorf("%w: travel date must be DD/MM/YYYY", domain.ErrInvalidInput)
	}

	occupied, err := s.occupiedSet(ctx, travelDate)
	if err != nil {
		return nil, err
	}

	free := make([]domain.Suite, 0)
	for _, suiteID := range s.catalog.SuitesOf(category) {
		if _, taken := occupied[suiteID]; taken {
			continue
		}
		info, err := s.catalog.InfoOf(suiteID)
		if err != nil {
			return nil, err
		}
		free = append(free, *info)
	}
	return free, nil
}

func (s *AvailabilityService) occupiedSet(ctx context.Context, travelDate string) (map[string]struct{}, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetOccupied(ctx, travelDate); err == nil && cached != nil {
			set := make(map[string]struct{}, len(cached))
			for _, id := range cached {
				set[id] = struct{}{}
			}
			return set, nil
		}
	}

	occupied, err := s.reservations.OccupiedSuites(ctx, travelDate)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		ids := make([]string, 0, len(occupied))
		for id := range occupied {
			ids = append(ids, id)
		}
		_ = s.cache.SetOccupied(ctx, travelDate, ids)
	}
	return occupied, nil
}

var _ AvailabilityUseCase = (*AvailabilityService)(nil)
