package service

import (
	"context"

	"github.com/paulmach/orb"
)

// GeocodingService resolves free-text addresses to coordinates for the
// optional map overlay. Lookups are best effort against a public service.
type GeocodingService interface {
	// Geocode resolves one address. Returns ok=false when the address does
	// not resolve; that is not an error.
	Geocode(ctx context.Context, address string) (point orb.Point, ok bool, err error)
}
