// Package dataset loads OpenFlights records and indexes them into the
// in-memory maps the search core queries.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kofiantwi/airroutes/internal/domain"
)

// OpenFlights column positions.
const (
	airportCityCol    = 2
	airportCountryCol = 3
	airportIATACol    = 4
	airportLatCol     = 6
	airportLonCol     = 7

	airlineIDCol     = 0
	airlineIATACol   = 3
	airlineICAOCol   = 4
	airlineActiveCol = 7

	routeAirlineIDCol = 1
	routeSourceCol    = 2
	routeDestCol      = 4
	routeStopsCol     = 7
)

const activeFlag = "Y"

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// LoadAirports parses airports.csv rows into airport records. Rows too short
// to carry a code are skipped; unparsable coordinates leave HasCoord false.
func LoadAirports(r io.Reader) ([]domain.Airport, error) {
	cr := newReader(r)
	var airports []domain.Airport
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read airports: %w", err)
		}
		if len(row) <= airportLonCol {
			continue
		}
		airport := domain.Airport{
			City:    row[airportCityCol],
			Country: row[airportCountryCol],
			Code:    domain.AirportCode(row[airportIATACol]),
		}
		lat, latErr := strconv.ParseFloat(row[airportLatCol], 64)
		lon, lonErr := strconv.ParseFloat(row[airportLonCol], 64)
		if latErr == nil && lonErr == nil {
			airport.Coord = domain.Coordinate{Lat: lat, Lon: lon}
			airport.HasCoord = true
		}
		airports = append(airports, airport)
	}
	return airports, nil
}

// LoadAirlines parses airlines.csv rows. Rows without a numeric id are
// skipped; the active flag must be exactly "Y".
func LoadAirlines(r io.Reader) ([]domain.Airline, error) {
	cr := newReader(r)
	var airlines []domain.Airline
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read airlines: %w", err)
		}
		if len(row) <= airlineActiveCol {
			continue
		}
		id, err := strconv.Atoi(row[airlineIDCol])
		if err != nil {
			continue
		}
		airlines = append(airlines, domain.Airline{
			ID:     id,
			IATA:   row[airlineIATACol],
			ICAO:   row[airlineICAOCol],
			Active: row[airlineActiveCol] == activeFlag,
		})
	}
	return airlines, nil
}

// LoadRoutes parses routes.csv rows. Rows with a non-numeric airline id or
// stop count are skipped.
func LoadRoutes(r io.Reader) ([]domain.RouteEdge, error) {
	cr := newReader(r)
	var routes []domain.RouteEdge
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read routes: %w", err)
		}
		if len(row) <= routeStopsCol {
			continue
		}
		airlineID, err := strconv.Atoi(row[routeAirlineIDCol])
		if err != nil {
			continue
		}
		stops, err := strconv.Atoi(row[routeStopsCol])
		if err != nil {
			continue
		}
		routes = append(routes, domain.RouteEdge{
			AirlineID: airlineID,
			From:      domain.AirportCode(row[routeSourceCol]),
			To:        domain.AirportCode(row[routeDestCol]),
			Stops:     stops,
		})
	}
	return routes, nil
}

// LoadFromFiles reads the three OpenFlights CSV files and builds the index.
func LoadFromFiles(airportsPath, airlinesPath, routesPath string) (*Index, error) {
	airports, err := loadFile(airportsPath, LoadAirports)
	if err != nil {
		return nil, err
	}
	airlines, err := loadFile(airlinesPath, LoadAirlines)
	if err != nil {
		return nil, err
	}
	routes, err := loadFile(routesPath, LoadRoutes)
	if err != nil {
		return nil, err
	}
	return NewIndex(airports, airlines, routes), nil
}

func loadFile[T any](path string, load func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return load(f)
}
