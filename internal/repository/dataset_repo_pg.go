package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kofiantwi/airroutes/internal/domain"
)

// DatasetRepository loads the OpenFlights records the in-memory index is
// built from. It is an alternative to the CSV files, not a per-query store:
// the service reads everything once at startup.
type DatasetRepository interface {
	Airports(ctx context.Context) ([]domain.Airport, error)
	Airlines(ctx context.Context) ([]domain.Airline, error)
	Routes(ctx context.Context) ([]domain.RouteEdge, error)
}

type PGDatasetRepository struct {
	db *pgxpool.Pool
}

func NewDatasetRepository(db *pgxpool.Pool) DatasetRepository {
	return &PGDatasetRepository{db: db}
}

func (r *PGDatasetRepository) Airports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT city, country, iata, latitude, longitude FROM airports`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.City, &a.Country, &a.Code, &a.Coord.Lat, &a.Coord.Lon); err != nil {
			return nil, err
		}
		a.HasCoord = true
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGDatasetRepository) Airlines(ctx context.Context) ([]domain.Airline, error) {
	rows, err := r.db.Query(ctx, `SELECT id, iata, icao, active FROM airlines`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airlines := make([]domain.Airline, 0)
	for rows.Next() {
		var a domain.Airline
		if err := rows.Scan(&a.ID, &a.IATA, &a.ICAO, &a.Active); err != nil {
			return nil, err
		}
		airlines = append(airlines, a)
	}
	return airlines, rows.Err()
}

func (r *PGDatasetRepository) Routes(ctx context.Context) ([]domain.RouteEdge, error) {
	rows, err := r.db.Query(ctx, `SELECT airline_id, src_airport, dst_airport, stops FROM routes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.RouteEdge, 0)
	for rows.Next() {
		var e domain.RouteEdge
		if err := rows.Scan(&e.AirlineID, &e.From, &e.To, &e.Stops); err != nil {
			return nil, err
		}
		routes = append(routes, e)
	}
	return routes, rows.Err()
}

var _ DatasetRepository = (*PGDatasetRepository)(nil)
