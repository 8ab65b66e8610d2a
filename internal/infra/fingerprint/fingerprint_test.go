package fingerprint

import (
	"strings"
	"testing"

	"romaneio/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func sampleSignals() service.DeviceSignals {
	return service.DeviceSignals{
		UserAgent:           "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		Language:            "pt-BR",
		ScreenResolution:    "1920x1080",
		ColorDepth:          24,
		TimezoneOffset:      180,
		HardwareConcurrency: 8,
		Platform:            "Win32",
		CanvasHash:          "a1b2c3",
	}
}

func TestFingerprintService_Deterministic(t *testing.T) {
	svc := NewFingerprintService()

	first := svc.Derive(sampleSignals())
	second := svc.Derive(sampleSignals())

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "disp-"))
	assert.Greater(t, len(first), len("disp-"))
}

func TestFingerprintService_EverySignalChangesToken(t *testing.T) {
	svc := NewFingerprintService()
	base := svc.Derive(sampleSignals())

	variants := map[string]service.DeviceSignals{}

	s := sampleSignals()
	s.UserAgent = "Mozilla/5.0 (X11; Linux x86_64)"
	variants["user agent"] = s

	s = sampleSignals()
	s.Language = "en-US"
	variants["language"] = s

	s = sampleSignals()
	s.ScreenResolution = "1366x768"
	variants["screen resolution"] = s

	s = sampleSignals()
	s.ColorDepth = 30
	variants["color depth"] = s

	s = sampleSignals()
	s.TimezoneOffset = 0
	variants["timezone offset"] = s

	s = sampleSignals()
	s.HardwareConcurrency = 4
	variants["hardware concurrency"] = s

	s = sampleSignals()
	s.Platform = "Linux"
	variants["platform"] = s

	s = sampleSignals()
	s.CanvasHash = "ffffff"
	variants["canvas hash"] = s

	for name, signals := range variants {
		assert.NotEqual(t, base, svc.Derive(signals), "changing %s should change the token", name)
	}
}

func TestFingerprintService_EmptySignals(t *testing.T) {
	svc := NewFingerprintService()

	token := svc.Derive(service.DeviceSignals{})
	assert.True(t, strings.HasPrefix(token, "disp-"))
}
