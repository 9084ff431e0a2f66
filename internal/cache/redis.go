package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hamna2004/dsaProjectFinal/config"
	"github.com/hamna2004/dsaProjectFinal/internal/domain"
)

// RedisCache holds the airport and flight record sets the engine builds
// its graphs from. A cache miss is (nil, nil), never an error.
type RedisCache struct {
	client     *redis.Client
	networkTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, networkTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		networkTTL: networkTTL,
	}
}

func (c *RedisCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	data, err := c.client.Get(ctx, airportsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var airports []domain.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	payload, err := json.Marshal(airports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airportsKey(), payload, c.networkTTL).Err()
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.networkTTL).Err()
}

// InvalidateNetwork drops both cached record sets, forcing the next
// query to reload from the database. Called after a flight sync lands.
func (c *RedisCache) InvalidateNetwork(ctx context.Context) error {
	return c.client.Del(ctx, airportsKey(), flightsKey()).Err()
}

func airportsKey() string {
	return "cache:airports"
}

func flightsKey() string {
	return "cache:flights"
}
