package flights

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hamna2004/dsaProjectFinal/internal/domain"
	"github.com/hamna2004/dsaProjectFinal/internal/engine"
	"github.com/hamna2004/dsaProjectFinal/internal/kafka"
	"github.com/hamna2004/dsaProjectFinal/internal/repository"
)

type FlightUseCase interface {
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	SearchFlights(ctx context.Context, from, to string) ([]domain.Flight, error)
	GetFlight(ctx context.Context, id int64) (*domain.Flight, error)
	SyncFlights(ctx context.Context, input SyncInput) (string, error)
}

type Cache interface {
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type FlightService struct {
	airports  repository.AirportRepository
	flights   repository.FlightRepository
	cache     Cache
	producer  Producer
	syncTopic string
}

// SyncInput is a batch of records to merge into the network. The merge
// itself happens asynchronously in the worker.
type SyncInput struct {
	Airports []domain.Airport `json:"airports"`
	Flights  []domain.Flight  `json:"flights"`
}

func NewFlightService(
	airports repository.AirportRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	syncTopic string,
) *FlightService {
	return &FlightService{
		airports:  airports,
		flights:   flights,
		cache:     cache,
		producer:  producer,
		syncTopic: syncTopic,
	}
}

func (s *FlightService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	airports, err := s.airports.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAirports(ctx, airports)
	}
	return airports, nil
}

func (s *FlightService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) SearchFlights(ctx context.Context, from, to string) ([]domain.Flight, error) {
	return s.flights.Search(ctx, engine.NormalizeCode(from), engine.NormalizeCode(to))
}

func (s *FlightService) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.flights.GetByID(ctx, id)
}

// SyncFlights publishes the batch to the sync topic and returns the
// event id. The worker consumes it, upserts the records and drops the
// network cache; readers keep serving the old snapshot until then.
func (s *FlightService) SyncFlights(ctx context.Context, input SyncInput) (string, error) {
	if len(input.Flights) == 0 && len(input.Airports) == 0 {
		return "", fmt.Errorf("sync batch is empty")
	}

	event := kafka.FlightSyncEvent{
		EventID:    uuid.NewString(),
		Airports:   input.Airports,
		Flights:    input.Flights,
		ReceivedAt: time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.syncTopic, event.EventID, event); err != nil {
		return "", err
	}
	return event.EventID, nil
}

var _ FlightUseCase = (*FlightService)(nil)
