package api

import (
	"context"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/quarterly-sales-report/internal/api/handler"
	"github.com/vfg2006/quarterly-sales-report/internal/api/handler/router"
	"github.com/vfg2006/quarterly-sales-report/internal/config"
	"github.com/vfg2006/quarterly-sales-report/internal/observability"
	"github.com/vfg2006/quarterly-sales-report/internal/usecases/reporting"
	"github.com/vfg2006/quarterly-sales-report/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	provider handler.ReportProvider,
	renderer reporting.Renderer,
	metrics *observability.Metrics,
) (*Server, error) {
	routes := append(handler.Healthcheck(), handler.Reports(provider, renderer)...)

	rt := router.New(
		router.WithRoutes(router.Instrument(routes, metrics.Middleware)...),
		router.WithRoutes(handler.Metrics(metrics.Handler())...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.CORS.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              config.Server.Addr(),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler exposes the full middleware chain, mainly for tests
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully
func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logrus.WithError(err).Error("server stopped unexpectedly")
		return err
	case <-ctx.Done():
		logrus.Info("application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("shutting down server")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
