// Package geocode resolves free-text addresses through a public
// Nominatim-compatible endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"romaneio/config"
	"romaneio/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL        = "https://nominatim.openstreetmap.org"
	defaultLookupInterval = 300 * time.Millisecond
	defaultTimeout        = 5 * time.Second
)

// nominatimClient is a concrete implementation of the GeocodingService
// interface. Lookups are paced: the upstream is a shared public service and
// bursts get rate limited.
type nominatimClient struct {
	baseURL  string
	interval time.Duration
	client   *http.Client

	mu       sync.Mutex
	lastCall time.Time
}

// NewNominatimClient is the constructor for nominatimClient.
func NewNominatimClient(cfg *config.Config) service.GeocodingService {
	baseURL := defaultBaseURL
	interval := defaultLookupInterval
	timeout := defaultTimeout
	if cfg != nil && cfg.Geocoding != nil {
		if cfg.Geocoding.BaseURL != "" {
			baseURL = cfg.Geocoding.BaseURL
		}
		if cfg.Geocoding.LookupInterval > 0 {
			interval = cfg.Geocoding.LookupInterval
		}
		if cfg.Geocoding.Timeout > 0 {
			timeout = cfg.Geocoding.Timeout
		}
	}

	return &nominatimClient{
		baseURL:  baseURL,
		interval: interval,
		client:   &http.Client{Timeout: timeout},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves one address. Returns ok=false when the address does not
// resolve; that is not an error.
func (c *nominatimClient) Geocode(ctx context.Context, address string) (orb.Point, bool, error) {
	if err := c.pace(ctx); err != nil {
		return orb.Point{}, false, err
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "failed to build geocode request")
	}
	req.Header.Set("User-Agent", "romaneio/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "geocode request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, false, errors.Errorf("geocode upstream returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return orb.Point{}, false, errors.Wrap(err, "failed to decode geocode response")
	}
	if len(results) == 0 {
		return orb.Point{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "invalid latitude in geocode response")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "invalid longitude in geocode response")
	}

	return orb.Point{lon, lat}, true, nil
}

// pace enforces the minimum interval between successive upstream calls.
func (c *nominatimClient) pace(ctx context.Context) error {
	c.mu.Lock()
	wait := c.interval - time.Since(c.lastCall)
	if wait < 0 {
		wait = 0
	}
	c.lastCall = time.Now().Add(wait)
	c.mu.Unlock()

	if wait == 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "geocode lookup canceled while pacing")
	case <-timer.C:
		return nil
	}
}
