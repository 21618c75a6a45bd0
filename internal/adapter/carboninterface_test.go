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

func TestCarbonInterfaceEmissionsAdapter_EstimateEmissions(t *testing.T) {
	var gotAuth string
	var gotBody carbonEstimateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/estimates", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"attributes": {"carbon_g": 50000, "carbon_kg": 50.0}}}`))
	}))
	defer server.Close()

	a := NewCarbonInterfaceEmissionsAdapter(server.URL, "passenger_vehicle", 5*time.Second, zap.NewNop())
	result, err := a.EstimateEmissions(context.Background(), 559.0, "carbon-key")
	require.NoError(t, err)

	assert.Equal(t, "Bearer carbon-key", gotAuth)
	assert.Equal(t, carbonEstimateRequest{
		Type:           "vehicle",
		DistanceUnit:   "km",
		DistanceValue:  559.0,
		VehicleModelID: "passenger_vehicle",
	}, gotBody)

	assert.Equal(t, 50000.0, result.GramsCO2)
	assert.Equal(t, 50.0, result.KilogramsCO2)
}

func TestCarbonInterfaceEmissionsAdapter_OnlyCreatedOrAcceptedSucceed(t *testing.T) {
	cases := []struct {
		status  int
		wantErr bool
	}{
		{http.StatusCreated, false},
		{http.StatusAccepted, false},
		{http.StatusOK, true}, // a generic success code is not the estimate-created status
		{http.StatusUnauthorized, true},
		{http.StatusInternalServerError, true},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"data": {"attributes": {"carbon_g": 1000, "carbon_kg": 1.0}}}`))
		}))

		a := NewCarbonInterfaceEmissionsAdapter(server.URL, "passenger_vehicle", 5*time.Second, zap.NewNop())
		_, err := a.EstimateEmissions(context.Background(), 10, "carbon-key")
		server.Close()

		if tc.wantErr {
			require.Error(t, err, "status %d", tc.status)
			assert.ErrorIs(t, err, route.ErrEmissionsUnavailable)
		} else {
			require.NoError(t, err, "status %d", tc.status)
		}
	}
}
