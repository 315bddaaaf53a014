package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{})
	go gracefulShutdown(context.Background(), srv, func() { close(cleaned) })

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

func TestRunBatch(t *testing.T) {
	p := filepath.Join(t.TempDir(), "scenarios.csv")
	if err := os.WriteFile(p, []byte("loan_amount,interest_rate,loan_term_years\n100000,5,30\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	if err := runBatch(context.Background(), p, &out, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "100000,5,30,536.82,193255.20,93255.20,") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunBatch_Errors(t *testing.T) {
	if err := runBatch(context.Background(), "", &bytes.Buffer{}, 0); err == nil {
		t.Fatalf("expected error without --file")
	}

	p := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(p, []byte("amount,rate,years\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := runBatch(context.Background(), p, &bytes.Buffer{}, 0); err == nil {
		t.Fatalf("expected header error")
	}
}
