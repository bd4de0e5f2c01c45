package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/raysh454/sokudo/internal/grader"
	"github.com/raysh454/sokudo/internal/logging"
	"github.com/raysh454/sokudo/internal/pagespeed"
)

// AuditRunner is the slice of the pagespeed client the server needs. Tests
// substitute stubs; production wires *pagespeed.Client.
type AuditRunner interface {
	Run(ctx context.Context, target string) (*pagespeed.Result, error)
}

// Server is the HTTP API surface for sokudo.
type Server struct {
	cfg     Config
	runner  AuditRunner
	router  chi.Router
	logger  logging.Logger
	origins map[string]struct{}
}

// NewServer creates a new Server around the given audit runner.
func NewServer(cfg Config, runner AuditRunner, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	origins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		o = strings.TrimSpace(o)
		if o != "" {
			origins[o] = struct{}{}
		}
	}

	s := &Server{
		cfg:     cfg,
		runner:  runner,
		router:  chi.NewRouter(),
		logger:  logger,
		origins: origins,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.requestLogger)
	r.Use(s.metricsMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.recoverer)

	r.MethodNotAllowed(s.handleMethodNotAllowed)

	// CORS preflight short-circuits before any handler logic.
	r.Options("/audit", s.handlePreflight)
	r.Post("/audit", s.handleAudit)

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}

// corsMiddleware echoes an allow-listed Origin back and marks the response as
// origin-varying. The list is advisory: requests from unknown origins are
// still served, they just get no Access-Control-Allow-Origin header.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			if _, ok := s.origins[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next.ServeHTTP(w, r)
	})
}

// requestLogger tags each request with an id and logs it. The API key travels
// only on the outbound call and must never show up in these fields.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		s.logger.Info("http_request",
			logging.Field{Key: "request_id", Value: id},
			logging.Field{Key: "method", Value: r.Method},
			logging.Field{Key: "path", Value: r.URL.Path})

		next.ServeHTTP(w, r)
	})
}

// recoverer converts a panic anywhere below into the standard 500 payload
// instead of a dropped connection.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic in handler",
					logging.Field{Key: "path", Value: r.URL.Path},
					logging.Field{Key: "panic", Value: fmt.Sprint(rec)})
				writeError(w, http.StatusInternalServerError, "audit failed", fmt.Sprint(rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // audit calls can take most of a minute
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Detail: detail})
}

// --- HTTP handlers ---

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	// CORS headers are already set by the middleware.
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
}

// handleAudit godoc
// @Summary Run a page-speed audit
// @Description Audits the given URL through the PageSpeed Insights API and returns a simplified score/issue report.
// @Accept json
// @Produce json
// @Param request body server.AuditRequest true "Page to audit"
// @Success 200 {object} grader.Summary
// @Failure 400 {object} server.ErrorResponse
// @Failure 405 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /audit [post]
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	var body AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.URL) == "" {
		writeError(w, http.StatusBadRequest, "missing url", "")
		return
	}

	res, err := s.runner.Run(r.Context(), body.URL)
	if err != nil {
		var ue *pagespeed.UpstreamError
		if errors.As(err, &ue) {
			// Mirror the upstream status and hand the body through as detail.
			s.logger.Warn("upstream rejected audit",
				logging.Field{Key: "url", Value: body.URL},
				logging.Field{Key: "status", Value: ue.StatusCode})
			writeError(w, ue.StatusCode, "upstream error", ue.Body)
			return
		}
		s.logger.Error("audit failed",
			logging.Field{Key: "url", Value: body.URL},
			logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, "audit failed", err.Error())
		return
	}

	summary := grader.Summarize(res, body.URL)
	s.logger.Info("audit completed",
		logging.Field{Key: "url", Value: body.URL},
		logging.Field{Key: "score", Value: summary.Score})
	writeJSON(w, http.StatusOK, summary)
}

// handleHealthz godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} server.HealthResponse
// @Router /healthz [get]
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
