package http

import (
	"context"
	"errors"
	"exrates/internal/config"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Start serves handler until ctx is canceled and then drains in-flight requests.
// When ready is not nil it receives the bound address once the listener is up.
func Start(ctx context.Context, cfg config.HTTPServer, handler http.Handler, ready chan<- net.Addr) error {
	listener, listenErr := net.Listen("tcp", ":"+cfg.Port)
	if listenErr != nil {
		return listenErr
	}
	logrus.Infof("✅ HTTP server listening on %s", listener.Addr())
	if ready != nil {
		ready <- listener.Addr()
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: seconds(cfg.ReadTimeoutSec, 5),
		WriteTimeout:      seconds(cfg.WriteTimeoutSec, 60),
	}
	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), seconds(cfg.ShutdownTimeoutSec, 10))
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			return shutdownErr
		}
		logrus.Info("HTTP server stopped")
		return nil
	case serveErr := <-errCh:
		return serveErr
	}
}

func seconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}
