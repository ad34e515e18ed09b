package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	appstandings "github.com/preston-bernstein/standings-service/internal/app/standings"
	appteams "github.com/preston-bernstein/standings-service/internal/app/teams"
	"github.com/preston-bernstein/standings-service/internal/config"
	"github.com/preston-bernstein/standings-service/internal/datasource"
	httpserver "github.com/preston-bernstein/standings-service/internal/http"
	"github.com/preston-bernstein/standings-service/internal/http/handlers"
	"github.com/preston-bernstein/standings-service/internal/http/middleware"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/metrics"
	"github.com/preston-bernstein/standings-service/internal/render"
	"github.com/preston-bernstein/standings-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	logger        *slog.Logger
	metrics       *metrics.Recorder
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New loads the static data and wires the HTTP and metrics servers. It fails when
// the data cannot be loaded or breaks an integrity rule.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, buildSource(cfg), nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, src datasource.Source, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	memoryStore, err := store.Load(src)
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	logger.Info("data loaded",
		slog.String(logging.FieldSource, sourceName(src)),
		slog.Int("teams", len(memoryStore.ListTeams())),
		slog.Int("standings", len(memoryStore.ListStandings())),
	)

	recorder, metricsHandler, metricsShutdown := buildMetrics(cfg, logger, recorder)
	teamSvc, standingSvc := buildServices(memoryStore)
	httpSrv := buildHTTPServer(cfg, teamSvc, standingSvc, logger, recorder)

	return &Server{
		logger:        logger,
		metrics:       recorder,
		httpServer:    httpSrv,
		metricsServer: buildMetricsServer(cfg, metricsHandler),
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(logger *slog.Logger, httpSrv httpServer, metricsSrv httpServer) *Server {
	return &Server{
		logger:        logger,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
	}
}

func buildSource(cfg config.Config) datasource.Source {
	if cfg.DataDir != "" {
		return datasource.NewDir(cfg.DataDir)
	}
	return datasource.NewEmbedded()
}

func sourceName(src datasource.Source) string {
	if named, ok := src.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", src)
}

func buildServices(ms *store.MemoryStore) (*appteams.Service, *appstandings.Service) {
	return appteams.NewService(ms), appstandings.NewService(ms)
}

func buildHTTPServer(cfg config.Config, teamSvc *appteams.Service, standingSvc *appstandings.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(teamSvc, standingSvc, render.New(), logger, recorder)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.Recover(logger, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, shutdown
}

// buildMetricsServer serves /metrics and /health on the ops port when telemetry is enabled.
func buildMetricsServer(cfg config.Config, metricsHandler http.Handler) httpServer {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return netHTTPServer{
		srv: &http.Server{
			Addr:              ":" + cfg.Metrics.Port,
			Handler:           httpserver.NewOpsRouter(metricsHandler),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
