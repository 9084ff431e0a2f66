package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/hamna2004/dsaProjectFinal/config"
	"github.com/hamna2004/dsaProjectFinal/internal/cache"
	"github.com/hamna2004/dsaProjectFinal/internal/kafka"
	"github.com/hamna2004/dsaProjectFinal/internal/repository"
)

// The worker consumes flight sync events, upserts the records and
// invalidates the network cache so the API serves the new snapshot.
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
	airportRepo := repository.NewAirportRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.FlightSyncTopic)
	defer consumer.Close()

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.FlightSyncEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("decode sync event: %v", err)
			return nil
		}

		for _, a := range event.Airports {
			if err := airportRepo.Upsert(ctx, a); err != nil {
				log.Printf("upsert airport %s: %v", a.Code, err)
				return err
			}
		}
		for _, f := range event.Flights {
			if err := flightRepo.Upsert(ctx, f); err != nil {
				log.Printf("upsert flight %s: %v", f.FlightNo, err)
				return err
			}
		}

		if err := redisCache.InvalidateNetwork(ctx); err != nil {
			log.Printf("invalidate cache: %v", err)
		}
		log.Printf("sync %s applied: %d airports, %d flights", event.EventID, len(event.Airports), len(event.Flights))
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}
