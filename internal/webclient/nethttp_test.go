package webclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/raysh454/sokudo/internal/testutil"
	"github.com/raysh454/sokudo/internal/webclient"
)

func TestNetHTTPClient_Get(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c := webclient.NewNetHTTPClient(5*time.Second, &testutil.DummyLogger{}, nil)
	defer c.Close()

	resp, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if string(resp.Body) != "hello" {
		t.Errorf("expected body 'hello', got %q", resp.Body)
	}
	if resp.Headers.Get("X-Test") != "yes" {
		t.Errorf("expected X-Test header captured")
	}
	if resp.FetchedAt.IsZero() {
		t.Errorf("expected FetchedAt to be set")
	}
}

func TestNetHTTPClient_NonSuccessStatusIsNotAnError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	c := webclient.NewNetHTTPClient(5*time.Second, &testutil.DummyLogger{}, nil)
	defer c.Close()

	resp, err := c.Do(context.Background(), &webclient.Request{Method: "GET", URL: srv.URL})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	// Status interpretation belongs to the caller.
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", resp.StatusCode)
	}
}

func TestNetHTTPClient_NilRequest(t *testing.T) {
	t.Parallel()

	c := webclient.NewNetHTTPClient(time.Second, &testutil.DummyLogger{}, nil)
	defer c.Close()

	if _, err := c.Do(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil request")
	}
}

func TestNetHTTPClient_RequestHeadersForwarded(t *testing.T) {
	t.Parallel()

	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
	}))
	defer srv.Close()

	c := webclient.NewNetHTTPClient(5*time.Second, &testutil.DummyLogger{}, nil)
	defer c.Close()

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	if _, err := c.Do(context.Background(), &webclient.Request{Method: "get", URL: srv.URL, Headers: headers}); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept header forwarded, got %q", gotAccept)
	}
}

func TestNetHTTPClient_ContextCancellation(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := webclient.NewNetHTTPClient(5*time.Second, &testutil.DummyLogger{}, nil)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.Do(ctx, &webclient.Request{Method: "GET", URL: srv.URL}); err == nil {
		t.Fatal("expected error after context timeout")
	}
}
