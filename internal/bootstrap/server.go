package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/Domenick1991/riverbooking/api"
	"github.com/Domenick1991/riverbooking/config"
	"github.com/Domenick1991/riverbooking/internal/service/availability"
	"github.com/Domenick1991/riverbooking/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, reservationSvc reservation.ReservationUseCase, availabilitySvc availability.AvailabilityUseCase) error {
	router := gin.Default()

	reservationHandler := api.NewReservationHandler(reservationSvc)
	reservationHandler.Register(router.Group("/reservations"))

	availabilityHandler := api.NewAvailabilityHandler(availabilitySvc)
	availabilityHandler.Register(router.Group("/availability"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
