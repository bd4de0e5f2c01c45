package main

import (
	"fmt"
	"net/http"
	"os"

	_ "github.com/raysh454/sokudo/docs" // swagger spec registration
	"github.com/raysh454/sokudo/internal/config"
	"github.com/raysh454/sokudo/internal/logging"
	"github.com/raysh454/sokudo/internal/pagespeed"
	"github.com/raysh454/sokudo/internal/server"
	"github.com/raysh454/sokudo/internal/webclient"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sokudo:", err)
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}, "sokudo")

	wc := webclient.NewNetHTTPClient(cfg.UpstreamTimeout, logger, nil)
	defer wc.Close()

	psi := pagespeed.NewClient(pagespeed.Config{
		Endpoint: cfg.UpstreamEndpoint,
		APIKey:   cfg.APIKey,
		Strategy: cfg.Strategy,
	}, wc, logger)

	srv := server.NewServer(server.Config{
		ListenAddr:     cfg.ListenAddr,
		AllowedOrigins: cfg.AllowedOrigins,
	}, psi, logger)

	logger.Info("sokudo listening",
		logging.Field{Key: "addr", Value: cfg.ListenAddr},
		logging.Field{Key: "strategy", Value: cfg.Strategy})

	if err := srv.HTTPServer().ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server exited", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
}
