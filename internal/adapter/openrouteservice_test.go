package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const orsFixture = `{
	"features": [{
		"geometry": {"coordinates": [[-122.4194, 37.7749], [-118.2437, 34.0522]]},
		"properties": {
			"summary": {"distance": 559000, "duration": 18000},
			"segments": [{"steps": [{"instruction": "Head south"}, {"instruction": "Arrive at destination"}]}]
		}
	}]
}`

func TestORSRouteAdapter_GetRoute(t *testing.T) {
	var gotAuth string
	var gotBody struct {
		Coordinates [][]float64 `json:"coordinates"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/directions/driving-car/geojson", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(orsFixture))
	}))
	defer server.Close()

	a := NewORSRouteAdapter(server.URL, 5*time.Second, zap.NewNop())
	origin := route.Coordinate{Latitude: 37.7749, Longitude: -122.4194}
	destination := route.Coordinate{Latitude: 34.0522, Longitude: -118.2437}

	result, err := a.GetRoute(context.Background(), origin, destination, "ors-key")
	require.NoError(t, err)

	assert.Equal(t, "ors-key", gotAuth)
	// The upstream speaks (lon, lat).
	assert.Equal(t, [][]float64{
		{-122.4194, 37.7749},
		{-118.2437, 34.0522},
	}, gotBody.Coordinates)

	assert.Equal(t, 559.0, result.DistanceKm)
	assert.Equal(t, 300, result.DurationMinutes)
	assert.Equal(t, []string{"Head south", "Arrive at destination"}, result.Directions)
	// The geometry comes back swapped to (lat, lon).
	require.Len(t, result.Path, 2)
	assert.Equal(t, route.Coordinate{Latitude: 37.7749, Longitude: -122.4194}, result.Path[0])
	assert.Equal(t, route.Coordinate{Latitude: 34.0522, Longitude: -118.2437}, result.Path[1])
}

func TestORSRouteAdapter_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	a := NewORSRouteAdapter(server.URL, 5*time.Second, zap.NewNop())
	_, err := a.GetRoute(context.Background(), route.Coordinate{}, route.Coordinate{}, "bad-key")

	require.Error(t, err)
	assert.ErrorIs(t, err, route.ErrRouteUnavailable)
}

func TestORSRouteAdapter_NoRouteFeatures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	a := NewORSRouteAdapter(server.URL, 5*time.Second, zap.NewNop())
	_, err := a.GetRoute(context.Background(), route.Coordinate{}, route.Coordinate{}, "ors-key")

	require.Error(t, err)
	assert.ErrorIs(t, err, route.ErrRouteUnavailable)
}

func TestORSRouteAdapter_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	a := NewORSRouteAdapter(server.URL, time.Second, zap.NewNop())
	_, err := a.GetRoute(context.Background(), route.Coordinate{}, route.Coordinate{}, "ors-key")

	require.Error(t, err)
	assert.ErrorIs(t, err, route.ErrRouteUnavailable)
}
