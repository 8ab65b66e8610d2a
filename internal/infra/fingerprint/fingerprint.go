// Package fingerprint derives device tokens from client-reported signals.
package fingerprint

import (
	"strconv"
	"strings"

	"romaneio/internal/domain/service"
)

const tokenPrefix = "disp-"

// fingerprintService is a concrete implementation of the FingerprintService
// interface. The derivation must stay byte-for-byte stable: every registered
// device is keyed by its token, and a different hash would send the whole
// fleet back to pending approval.
type fingerprintService struct{}

// NewFingerprintService is the constructor for fingerprintService.
func NewFingerprintService() service.FingerprintService {
	return &fingerprintService{}
}

// Derive computes the fingerprint token for a signal tuple.
func (s *fingerprintService) Derive(signals service.DeviceSignals) string {
	source := strings.Join([]string{
		signals.UserAgent,
		signals.Language,
		signals.ScreenResolution,
		strconv.Itoa(signals.ColorDepth),
		strconv.Itoa(signals.TimezoneOffset),
		strconv.Itoa(signals.HardwareConcurrency),
		signals.Platform,
		signals.CanvasHash,
	}, "|")

	// Rolling 31-multiplier hash over the UTF-16-style code units, kept in
	// 32-bit signed arithmetic so overflow wraps the same way everywhere.
	var hash int32
	for _, r := range source {
		hash = hash*31 + int32(r)
	}

	magnitude := int64(hash)
	if magnitude < 0 {
		magnitude = -magnitude
	}

	return tokenPrefix + strconv.FormatInt(magnitude, 36)
}
