package detail

import (
	"math/rand"
	"testing"

	"github.com/kofiantwi/airroutes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEdges map[[2]domain.AirportCode][]domain.RouteEdge

func (s stubEdges) EdgesBetween(from, to domain.AirportCode) []domain.RouteEdge {
	return s[[2]domain.AirportCode{from, to}]
}

type stubAirline struct {
	iata string
	icao string
}

type stubAirlines map[int]stubAirline

func (s stubAirlines) ActiveLabel(airlineID int) (string, string, bool) {
	a, ok := s[airlineID]
	if !ok {
		return "", "", false
	}
	return a.iata, a.icao, true
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestResolvePrefersIATA(t *testing.T) {
	edges := stubEdges{
		{"ACC", "AMS"}: {{AirlineID: 1, From: "ACC", To: "AMS", Stops: 2}},
	}
	airlines := stubAirlines{1: {iata: "KL", icao: "KLM"}}
	resolver := NewResolver(edges, airlines, seeded(1))

	segment, err := resolver.Resolve("ACC", "AMS")
	require.NoError(t, err)
	assert.Equal(t, "KL", segment.Airline)
	assert.Equal(t, 2, segment.Stops)
	assert.Equal(t, domain.AirportCode("ACC"), segment.From)
	assert.Equal(t, domain.AirportCode("AMS"), segment.To)
}

func TestResolveFallsBackToICAO(t *testing.T) {
	edges := stubEdges{
		{"ACC", "AMS"}: {{AirlineID: 1, Stops: 0}},
	}
	airlines := stubAirlines{1: {iata: domain.NullSentinel, icao: "KLM"}}
	resolver := NewResolver(edges, airlines, seeded(1))

	segment, err := resolver.Resolve("ACC", "AMS")
	require.NoError(t, err)
	assert.Equal(t, "KLM", segment.Airline)
}

func TestResolveSkipsInactiveAndUnlabeled(t *testing.T) {
	edges := stubEdges{
		{"ACC", "AMS"}: {
			{AirlineID: 1, Stops: 0}, // inactive
			{AirlineID: 2, Stops: 1}, // both labels null
			{AirlineID: 3, Stops: 0},
		},
	}
	airlines := stubAirlines{
		2: {iata: domain.NullSentinel, icao: ""},
		3: {iata: "BA", icao: "BAW"},
	}

	for seed := int64(0); seed < 20; seed++ {
		resolver := NewResolver(edges, airlines, seeded(seed))
		segment, err := resolver.Resolve("ACC", "AMS")
		require.NoError(t, err)
		assert.Equal(t, "BA", segment.Airline)
	}
}

func TestResolveNoAirlineLabel(t *testing.T) {
	edges := stubEdges{
		{"ACC", "AMS"}: {
			{AirlineID: 1, Stops: 0},
			{AirlineID: 2, Stops: 0},
		},
	}
	airlines := stubAirlines{2: {iata: domain.NullSentinel, icao: domain.NullSentinel}}
	resolver := NewResolver(edges, airlines, seeded(1))

	_, err := resolver.Resolve("ACC", "AMS")
	assert.ErrorIs(t, err, domain.ErrNoAirlineLabel)
}

func TestResolveSurfacesEveryValidAirline(t *testing.T) {
	edges := stubEdges{
		{"ACC", "LHR"}: {
			{AirlineID: 1, Stops: 0},
			{AirlineID: 2, Stops: 1},
			{AirlineID: 3, Stops: 0},
		},
	}
	airlines := stubAirlines{
		1: {iata: "BA", icao: "BAW"},
		2: {iata: "KQ", icao: "KQA"},
		3: {iata: domain.NullSentinel, icao: "AWA"},
	}
	resolver := NewResolver(edges, airlines, seeded(42))

	seen := make(map[string]bool)
	for i := 0; i < 300; i++ {
		segment, err := resolver.Resolve("ACC", "LHR")
		require.NoError(t, err)
		assert.NotEqual(t, domain.NullSentinel, segment.Airline)
		assert.NotEmpty(t, segment.Airline)
		seen[segment.Airline] = true
	}
	assert.Equal(t, map[string]bool{"BA": true, "KQ": true, "AWA": true}, seen)
}

func TestResolveDeterministicWithSameSeed(t *testing.T) {
	edges := stubEdges{
		{"ACC", "LHR"}: {
			{AirlineID: 1, Stops: 0},
			{AirlineID: 2, Stops: 1},
		},
	}
	airlines := stubAirlines{
		1: {iata: "BA", icao: "BAW"},
		2: {iata: "KQ", icao: "KQA"},
	}

	first := NewResolver(edges, airlines, seeded(7))
	second := NewResolver(edges, airlines, seeded(7))
	for i := 0; i < 50; i++ {
		a, err := first.Resolve("ACC", "LHR")
		require.NoError(t, err)
		b, err := second.Resolve("ACC", "LHR")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}
