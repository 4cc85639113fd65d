package dataset

import (
	"strings"
	"testing"

	"github.com/kofiantwi/airroutes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const airportsCSV = `1,"Kotoka International Airport","Accra","Ghana","ACC","DGAA",5.605186,-0.166786,168,0,"N","Africa/Accra","airport","OurAirports"
2,"Heathrow Airport","London","United Kingdom","LHR","EGLL",51.4706,-0.461941,83,0,"E","Europe/London","airport","OurAirports"
3,"Closed Field","London","United Kingdom","\N","EGXX",51.0,-0.5,10,0,"E","Europe/London","airport","OurAirports"
4,"No Fix Strip","Nowhere","Atlantis","NWH","XXXX",bad,worse,0,0,"U","UTC","airport","OurAirports"
`

const airlinesCSV = `1,"British Airways","BA Intl","BA","BAW","SPEEDBIRD","United Kingdom","Y"
2,"Defunct Air","\N","DF","DFT","DEFUNCT","Nowhere","N"
\N,"Unknown Carrier","\N","UC","UNK","UNKNOWN","Nowhere","Y"
`

const routesCSV = `BA,1,ACC,1,LHR,2,,0,744
BA,1,ACC,1,LHR,2,,1,744
DF,2,LHR,2,ACC,1,,0,320
XX,\N,ACC,1,JFK,3,,0,320
`

func TestLoadAirports(t *testing.T) {
	airports, err := LoadAirports(strings.NewReader(airportsCSV))
	require.NoError(t, err)
	require.Len(t, airports, 4)

	assert.Equal(t, "Accra", airports[0].City)
	assert.Equal(t, "Ghana", airports[0].Country)
	assert.Equal(t, domain.AirportCode("ACC"), airports[0].Code)
	assert.True(t, airports[0].HasCoord)
	assert.InDelta(t, 5.605186, airports[0].Coord.Lat, 1e-9)
	assert.InDelta(t, -0.166786, airports[0].Coord.Lon, 1e-9)

	// null sentinel code survives loading; the index filters it
	assert.Equal(t, domain.AirportCode(domain.NullSentinel), airports[2].Code)
	// unparsable coordinates
	assert.False(t, airports[3].HasCoord)
}

func TestLoadAirlines(t *testing.T) {
	airlines, err := LoadAirlines(strings.NewReader(airlinesCSV))
	require.NoError(t, err)
	// the row without a numeric id is dropped
	require.Len(t, airlines, 2)

	assert.Equal(t, domain.Airline{ID: 1, IATA: "BA", ICAO: "BAW", Active: true}, airlines[0])
	assert.Equal(t, domain.Airline{ID: 2, IATA: "DF", ICAO: "DFT", Active: false}, airlines[1])
}

func TestLoadRoutes(t *testing.T) {
	routes, err := LoadRoutes(strings.NewReader(routesCSV))
	require.NoError(t, err)
	// the row with a non-numeric airline id is dropped
	require.Len(t, routes, 3)

	assert.Equal(t, domain.RouteEdge{AirlineID: 1, From: "ACC", To: "LHR", Stops: 0}, routes[0])
	assert.Equal(t, domain.RouteEdge{AirlineID: 1, From: "ACC", To: "LHR", Stops: 1}, routes[1])
	assert.Equal(t, domain.RouteEdge{AirlineID: 2, From: "LHR", To: "ACC", Stops: 0}, routes[2])
}
