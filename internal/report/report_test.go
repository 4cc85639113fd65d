package report

import (
	"bytes"
	"testing"

	"github.com/kofiantwi/airroutes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directPlan() *domain.RoutePlan {
	return &domain.RoutePlan{
		From: "ACC",
		To:   "AMS",
		Optimal: domain.RouteSummary{
			Path: domain.Path{"ACC", "AMS"},
			Segments: []domain.Segment{
				{From: "ACC", To: "AMS", Airline: "KL", Stops: 2},
			},
			Flights:    1,
			ExtraStops: 2,
		},
		DistanceKM: 5115.207,
	}
}

func TestWriteOptimalDirectFlight(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOptimal(&buf, directPlan()))

	out := buf.String()
	assert.Contains(t, out, "Optimal route from ACC to AMS\n")
	assert.Contains(t, out, "1. KL from ACC to AMS 2 stops\n")
	assert.Contains(t, out, "Total flights: 1\n")
	assert.Contains(t, out, "Total additional stops: 2\n")
	assert.Contains(t, out, "Total distance: 5115.21 km\n")
	assert.Contains(t, out, "Optimality criteria: flights and distance\n")
}

func TestWriteAllListsEveryRoute(t *testing.T) {
	plan := &domain.RoutePlan{
		From: "ACC",
		To:   "JFK",
		All: []domain.RouteSummary{
			{
				Path: domain.Path{"ACC", "LHR", "JFK"},
				Segments: []domain.Segment{
					{From: "ACC", To: "LHR", Airline: "BA", Stops: 0},
					{From: "LHR", To: "JFK", Airline: "BA", Stops: 0},
				},
				Flights: 2,
			},
			{
				Path: domain.Path{"ACC", "CAI", "JFK"},
				Segments: []domain.Segment{
					{From: "ACC", To: "CAI", Airline: "MS", Stops: 1},
					{From: "CAI", To: "JFK", Airline: "MS", Stops: 0},
				},
				Flights:    2,
				ExtraStops: 1,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, plan))

	out := buf.String()
	assert.Contains(t, out, "All Routes\n")
	assert.Contains(t, out, "1. BA from ACC to LHR 0 stops\n")
	assert.Contains(t, out, "2. BA from LHR to JFK 0 stops\n")
	assert.Contains(t, out, "1. MS from ACC to CAI 1 stops\n")
	assert.Contains(t, out, "Total additional stops: 1\n")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("Route from ACC to JFK\n")))
}

func TestWriteDiagnosticAppends(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOptimal(&buf, directPlan()))
	before := buf.String()

	require.NoError(t, WriteDiagnostic(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(before)), "existing output must be preserved")
	assert.Contains(t, buf.String(), "Unsupported request!\n")
}
