package server

// AuditRequest is the payload for starting an audit.
type AuditRequest struct {
	URL string `json:"url" example:"https://example.com"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"missing url"`

	// Detail carries the upstream response body or the underlying error text.
	Detail string `json:"detail,omitempty" example:"quota exceeded"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
