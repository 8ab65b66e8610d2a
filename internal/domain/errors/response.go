package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "DEVICE_BLOCKED"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the JSON envelope the error middleware writes.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
