package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"romaneio/config"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Geocoding: &config.GeocodingConfig{
			BaseURL:        baseURL,
			LookupInterval: time.Millisecond,
			Timeout:        time.Second,
		},
	}
}

func TestNominatimClient_Geocode_Resolves(t *testing.T) {
	server := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Rua das Flores, 123, Centro, Campinas", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"-22.9056","lon":"-47.0608"}]`))
	})

	client := NewNominatimClient(testConfig(server.URL))

	point, ok, err := client.Geocode(context.Background(), "Rua das Flores, 123, Centro, Campinas")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, orb.Point{-47.0608, -22.9056}, point)
}

func TestNominatimClient_Geocode_NoMatchIsNotAnError(t *testing.T) {
	server := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	client := NewNominatimClient(testConfig(server.URL))

	_, ok, err := client.Geocode(context.Background(), "Rua Inexistente, 999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNominatimClient_Geocode_UpstreamErrorSurfaces(t *testing.T) {
	server := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	client := NewNominatimClient(testConfig(server.URL))

	_, _, err := client.Geocode(context.Background(), "Rua A, 1")
	require.Error(t, err)
}

func TestNominatimClient_Geocode_PacesSuccessiveLookups(t *testing.T) {
	server := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"1","lon":"2"}]`))
	})

	cfg := testConfig(server.URL)
	cfg.Geocoding.LookupInterval = 50 * time.Millisecond
	client := NewNominatimClient(cfg)

	start := time.Now()
	for range 3 {
		_, _, err := client.Geocode(context.Background(), "Rua A, 1")
		require.NoError(t, err)
	}

	// Three lookups spaced 50ms apart cannot finish under 100ms.
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestNominatimClient_Geocode_CanceledWhilePacing(t *testing.T) {
	server := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"1","lon":"2"}]`))
	})

	cfg := testConfig(server.URL)
	cfg.Geocoding.LookupInterval = time.Minute
	client := NewNominatimClient(cfg)

	_, _, err := client.Geocode(context.Background(), "Rua A, 1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err = client.Geocode(ctx, "Rua B, 2")
	require.Error(t, err)
}
