package server

// Config is the HTTP-surface configuration.
type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// AllowedOrigins is the CORS allow-list, fixed at startup. An inbound
	// Origin matching an entry is echoed back; anything else gets no CORS
	// origin header but is still served.
	AllowedOrigins []string
}
