// Package demoserver is a stand-in for the PageSpeed Insights API, used for
// local development and demos. Point SOKUDO_UPSTREAM_ENDPOINT at it and any
// audit returns a canned Lighthouse payload.
package demoserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// DemoServer serves canned runPagespeed responses.
type DemoServer struct {
	cfg Config
}

// NewDemoServer creates a new demo server instance.
func NewDemoServer(cfg Config) *DemoServer {
	return &DemoServer{cfg: cfg}
}

// Handler returns the demo server's HTTP handler.
func (s *DemoServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.auditHandler)
	return mux
}

// Start starts the demo server.
func (s *DemoServer) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	fmt.Printf("Demo upstream starting on http://localhost%s\n", addr)
	fmt.Printf("Run sokudo with SOKUDO_UPSTREAM_ENDPOINT=http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// auditHandler mimics runPagespeed: it validates the query contract and
// returns the fixture payload built around the requested url.
func (s *DemoServer) auditHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Surface wiring bugs locally the way the real API would.
	if q.Get("key") == "" {
		http.Error(w, `{"error":{"code":400,"message":"API key missing"}}`, http.StatusBadRequest)
		return
	}
	target := q.Get("url")
	if target == "" {
		http.Error(w, `{"error":{"code":400,"message":"url parameter missing"}}`, http.StatusBadRequest)
		return
	}

	// ?fail=<status> forces an error response for testing the mirror path.
	if f := q.Get("fail"); f != "" {
		status, err := strconv.Atoi(f)
		if err != nil || status < 400 || status > 599 {
			status = http.StatusInternalServerError
		}
		http.Error(w, "forced upstream failure (demo)", status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(FixtureResult(target))
}
