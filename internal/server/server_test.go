package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/vanshika/costars/internal/config"
)

func testHTTPConfig(host string, port int) config.HTTPConfig {
	return config.HTTPConfig{
		Host:            host,
		Port:            port,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
		MetricsEnabled:  true,
	}
}

func TestServer_Addr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	if got := New(logger, testHTTPConfig("127.0.0.1", 8080), http.NotFoundHandler()).Addr(); got != "127.0.0.1:8080" {
		t.Fatalf("unexpected addr %q", got)
	}
	if got := New(logger, testHTTPConfig("::1", 9090), http.NotFoundHandler()).Addr(); got != "[::1]:9090" {
		t.Fatalf("expected bracketed IPv6 addr, got %q", got)
	}
}

func TestServer_ShutdownStopsStart(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	srv := New(logger, testHTTPConfig("127.0.0.1", 0), http.NotFoundHandler())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	// Shutdown may race ahead of ListenAndServe; retry until Start returns.
	deadline := time.After(2 * time.Second)
	for {
		if err := srv.Shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				t.Fatalf("expected clean stop, got %v", err)
			}
			if !strings.Contains(logs.String(), "metrics_enabled=true") {
				t.Fatalf("expected start log with metrics flag, got %q", logs.String())
			}
			return
		case <-deadline:
			t.Fatalf("server did not stop")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
