// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/raysh454/sokudo/internal/logging"
	"github.com/raysh454/sokudo/internal/webclient"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// ─── WebClient ─────────────────────────────────────────────────────────

// DummyWebClient implements webclient.WebClient. It returns the configured
// status and body (200 and empty when unset) and records the last request.
type DummyWebClient struct {
	mu          sync.Mutex
	Status      int
	Body        []byte
	Err         error
	LastRequest *webclient.Request
}

func (c *DummyWebClient) Do(ctx context.Context, req *webclient.Request) (*webclient.Response, error) {
	c.mu.Lock()
	c.LastRequest = req
	c.mu.Unlock()

	if c.Err != nil {
		return nil, c.Err
	}

	status := c.Status
	if status == 0 {
		status = 200
	}
	return &webclient.Response{
		Request:    req,
		Body:       c.Body,
		StatusCode: status,
		FetchedAt:  time.Now(),
	}, nil
}

func (c *DummyWebClient) Close() error { return nil }
