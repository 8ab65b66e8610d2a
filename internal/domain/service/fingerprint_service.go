package service

// DeviceSignals is the browser/OS signal tuple a device fingerprint is
// derived from. The same tuple must always produce the same token.
type DeviceSignals struct {
	UserAgent           string `json:"user_agent"`
	Language            string `json:"language"`
	ScreenResolution    string `json:"screen_resolution"`
	ColorDepth          int    `json:"color_depth"`
	TimezoneOffset      int    `json:"timezone_offset"`
	HardwareConcurrency int    `json:"hardware_concurrency"`
	Platform            string `json:"platform"`
	CanvasHash          string `json:"canvas_hash"`
}

// FingerprintService derives the device token from a signal tuple.
//
// The token is not a credential: every input is client-reported and
// spoofable. Changing the hash would orphan already-registered devices,
// so the derivation must stay stable across releases.
type FingerprintService interface {
	// Derive computes the fingerprint token for a signal tuple.
	Derive(signals DeviceSignals) string
}
