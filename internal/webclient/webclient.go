package webclient

import (
	"context"
	"net/http"
	"time"
)

// Request is a transport-agnostic outbound request.
type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

// Response is the captured result of executing a Request.
type Response struct {
	Request    *Request
	Headers    http.Header
	Body       []byte
	StatusCode int
	FetchedAt  time.Time
}

// WebClient executes outbound HTTP requests. The indirection exists so the
// upstream client and tests can inject doubles.
type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)

	Close() error
}
