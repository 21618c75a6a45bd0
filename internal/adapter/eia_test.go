package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEIAEnergyPriceAdapter_CurrentPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/series/", r.URL.Path)
		require.Equal(t, "eia-key", r.URL.Query().Get("api_key"))
		require.Equal(t, "ELEC.PRICE.US-ALL.M", r.URL.Query().Get("series_id"))
		_, _ = w.Write([]byte(`{"series": [{"data": [["2026-05", 12.9], ["2026-04", 12.7]]}]}`))
	}))
	defer server.Close()

	a := NewEIAEnergyPriceAdapter(server.URL, "ELEC.PRICE.US-ALL.M", 5*time.Second, zap.NewNop())
	price, err := a.CurrentPrice(context.Background(), "eia-key")
	require.NoError(t, err)

	assert.Equal(t, 12.9, price.PricePerUnit, "newest data point wins")
	assert.Equal(t, "2026-05", price.Period)
}

func TestEIAEnergyPriceAdapter_EmptySeries(t *testing.T) {
	cases := map[string]string{
		"no series":       `{"series": []}`,
		"no data points":  `{"series": [{"data": []}]}`,
		"malformed point": `{"series": [{"data": [[12.9]]}]}`,
		"swapped types":   `{"series": [{"data": [[12.9, "2026-05"]]}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			a := NewEIAEnergyPriceAdapter(server.URL, "ELEC.PRICE.US-ALL.M", 5*time.Second, zap.NewNop())
			_, err := a.CurrentPrice(context.Background(), "eia-key")

			require.Error(t, err)
			assert.ErrorIs(t, err, route.ErrEnergyDataUnavailable)
		})
	}
}

func TestEIAEnergyPriceAdapter_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	a := NewEIAEnergyPriceAdapter(server.URL, "ELEC.PRICE.US-ALL.M", 5*time.Second, zap.NewNop())
	_, err := a.CurrentPrice(context.Background(), "bad-key")

	require.Error(t, err)
	assert.ErrorIs(t, err, route.ErrEnergyDataUnavailable)
}
