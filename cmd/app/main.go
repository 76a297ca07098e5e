package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/riverbooking/config"
	"github.com/Domenick1991/riverbooking/internal/bootstrap"
	"github.com/Domenick1991/riverbooking/internal/cache"
	"github.com/Domenick1991/riverbooking/internal/domain"
	"github.com/Domenick1991/riverbooking/internal/kafka"
	"github.com/Domenick1991/riverbooking/internal/repository"
	"github.com/Domenick1991/riverbooking/internal/service/availability"
	"github.com/Domenick1991/riverbooking/internal/service/reservation"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	catalog := domain.NewCatalog()
	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.OccupiedTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	reservationRepo := repository.NewReservationRepository(pool)
	reservationService := reservation.NewReservationService(
		reservationRepo,
		catalog,
		redisCache,
		producer,
		cfg.Kafka.ReservationsTopic,
	)
	availabilityService := availability.NewAvailabilityService(reservationRepo, catalog, redisCache)

	if err := bootstrap.Run(ctx, cfg, reservationService, availabilityService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
