package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamna2004/dsaProjectFinal/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, from, to string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Upsert(ctx context.Context, flight domain.Flight) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, airline, flight_no, from_airport, to_airport, departure_time, arrival_time, duration_min, price_usd`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY from_airport, to_airport, flight_no`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) Search(ctx context.Context, from, to string) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE from_airport=$1 AND to_airport=$2 ORDER BY price_usd, flight_no`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Airline, &f.FlightNo, &f.From, &f.To, &f.DepartureTime, &f.ArrivalTime, &f.DurationMin, &f.PriceUSD); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Upsert(ctx context.Context, flight domain.Flight) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO flights (airline, flight_no, from_airport, to_airport, departure_time, arrival_time, duration_min, price_usd)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (flight_no, from_airport, to_airport) DO UPDATE SET
			airline = EXCLUDED.airline,
			departure_time = EXCLUDED.departure_time,
			arrival_time = EXCLUDED.arrival_time,
			duration_min = EXCLUDED.duration_min,
			price_usd = EXCLUDED.price_usd`,
		flight.Airline, flight.FlightNo, flight.From, flight.To, flight.DepartureTime, flight.ArrivalTime, flight.DurationMin, flight.PriceUSD)
	return err
}

func scanFlights(rows pgx.Rows) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.Airline, &f.FlightNo, &f.From, &f.To, &f.DepartureTime, &f.ArrivalTime, &f.DurationMin, &f.PriceUSD); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
