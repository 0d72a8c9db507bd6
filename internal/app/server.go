package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/wordlens/internal/transport/middleware"
	"github.com/heartmarshall/wordlens/internal/transport/rest"
)

// Serve runs the HTTP API until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func Serve(ctx context.Context, rt *Runtime) error {
	cfg := rt.Config.Server
	ln, err := net.Listen("tcp", net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return serve(ctx, rt, ln)
}

func serve(ctx context.Context, rt *Runtime, ln net.Listener) error {
	cfg := rt.Config.Server

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Handler: rest.NewRouter(rest.RouterConfig{
			Service:   rt.Thesaurus,
			Checks:    rt.Checks,
			Version:   BuildVersion(),
			CORS:      rt.Config.CORS,
			RateLimit: cfg.RateLimit,
			Limiter:   limiter,
			Logger:    rt.Logger,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(rt.Logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		rt.Logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http serve: %w", err)
	case <-ctx.Done():
	}

	rt.Logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
