package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamna2004/dsaProjectFinal/config"
	"github.com/hamna2004/dsaProjectFinal/internal/bootstrap"
	"github.com/hamna2004/dsaProjectFinal/internal/cache"
	"github.com/hamna2004/dsaProjectFinal/internal/kafka"
	"github.com/hamna2004/dsaProjectFinal/internal/repository"
	"github.com/hamna2004/dsaProjectFinal/internal/service/flights"
	"github.com/hamna2004/dsaProjectFinal/internal/service/planner"
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

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Engine.NetworkCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	airportRepo := repository.NewAirportRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)

	flightService := flights.NewFlightService(airportRepo, flightRepo, redisCache, producer, cfg.Kafka.FlightSyncTopic)
	plannerService := planner.NewPlannerService(airportRepo, flightRepo, redisCache, cfg.Engine.DefaultMaxStates, cfg.Engine.MaxStatesLimit)

	if err := bootstrap.Run(ctx, cfg, flightService, plannerService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
