package cli

import (
	"context"
	"time"

	"wordbook/internal/handlers"
	"wordbook/internal/logger"
	"wordbook/internal/server"
)

const (
	defaultPort     = "8080"
	shutdownTimeout = 10 * time.Second
)

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func serve(ctx context.Context, e *env) error {
	apiHandler := handlers.NewHandler(e.services, e.log, handlers.SessionCookie{
		Name:     e.cfg.Session.CookieName,
		Secure:   e.cfg.Session.CookieSecure,
		SameSite: handlers.ParseSameSite(e.cfg.Session.CookieSameSite),
	})

	srv := &server.Server{}
	errCh := runHTTPServer(srv, e.cfg.Port, apiHandler, e.log)

	return waitForShutdown(ctx, errCh, srv, e.log)
}

// runHTTPServer runs the HTTP server in a separate goroutine. The returned
// channel yields its terminal error.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) <-chan error {
	if port == "" {
		port = defaultPort
	}
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http_listen", "port", port)
		errCh <- srv.Run(port, handler.InitRoutes())
	}()
	return errCh
}

// waitForShutdown blocks until ctx is done or the server fails, then lets
// in-flight requests complete.
func waitForShutdown(ctx context.Context, errCh <-chan error, srv *server.Server, log *logger.Logger) error {
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server_forced_shutdown", "err", err)
		return err
	}
	return <-errCh
}
