package cli

import (
	"context"
	"testing"
	"time"

	"wordbook/internal/handlers"
	"wordbook/internal/logger"
	"wordbook/internal/server"
	"wordbook/internal/service"
)

func TestWaitForShutdown_CancelledBeforeListen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	log := logger.NewNop()
	h := handlers.NewHandler(&service.Service{}, log, handlers.SessionCookie{})
	srv := &server.Server{}

	done := make(chan error, 1)
	go func() {
		errCh := runHTTPServer(srv, "0", h, log)
		done <- waitForShutdown(ctx, errCh, srv, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("waitForShutdown: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server still running after ctx cancel")
	}
}

func TestWaitForShutdown_AfterListen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	log := logger.NewNop()
	h := handlers.NewHandler(&service.Service{}, log, handlers.SessionCookie{})
	srv := &server.Server{}

	errCh := runHTTPServer(srv, "0", h, log)
	time.Sleep(50 * time.Millisecond)
	cancel()

	done := make(chan error, 1)
	go func() { done <- waitForShutdown(ctx, errCh, srv, log) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("waitForShutdown: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("graceful shutdown did not finish")
	}
}
