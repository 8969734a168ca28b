package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"kanjize-hq/kanjize/pkg/config"
	"kanjize-hq/kanjize/pkg/kanjize"
	"kanjize-hq/kanjize/pkg/server/middleware"
	"kanjize-hq/kanjize/pkg/telemetry/health"
	"kanjize-hq/kanjize/pkg/telemetry/logging"
	"kanjize-hq/kanjize/pkg/telemetry/metrics"
	"kanjize-hq/kanjize/pkg/telemetry/tracing"
)

// Dependencies are the collaborators a Server records to. Nil fields are
// replaced with no-op implementations.
type Dependencies struct {
	Logger  *logging.Logger
	Metrics *metrics.Collector
	Tracer  *tracing.Tracer

	Version   string
	Commit    string
	BuildTime string
}

// defaults is the per-request starting point for conversion options.
type defaults struct {
	raw           config.KanjizeConfig
	configuration kanjize.Configuration
	maxInputRunes int
}

// Server is the HTTP conversion service.
type Server struct {
	config   *config.Config
	deps     Dependencies
	logger   *logging.Logger
	metrics  *metrics.Collector
	tracer   *tracing.Tracer
	checker  *health.Checker
	selfTest *health.SelfTestScheduler
	limiter  *middleware.ConcurrencyLimiter

	defaults atomic.Pointer[defaults]

	httpServer   *http.Server
	listener     net.Listener
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a server for cfg. It fails when the kanjize section
// does not describe a valid conversion configuration.
func NewServer(cfg *config.Config, deps Dependencies) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: nil configuration")
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.Tracer == nil {
		deps.Tracer = tracing.Noop()
	}

	s := &Server{
		config:  cfg,
		deps:    deps,
		logger:  deps.Logger.With("component", "server"),
		metrics: deps.Metrics,
		tracer:  deps.Tracer,
		checker: health.New(cfg.Telemetry.Health.CheckTimeout),
	}

	d, err := newDefaults(cfg)
	if err != nil {
		return nil, err
	}
	s.defaults.Store(d)

	if s.metrics.Enabled() {
		if err := config.ValidateMetricsPath(s.metricsPath()); err != nil {
			return nil, fmt.Errorf("invalid telemetry configuration: %w", err)
		}
	}

	if cfg.Server.MaxConcurrentRequests > 0 {
		s.limiter = middleware.NewConcurrencyLimiter(cfg.Server.MaxConcurrentRequests)
	}

	schedule := cfg.Telemetry.Health.SelfTestSchedule
	if schedule == config.SelfTestOnProbe {
		schedule = ""
	}
	s.selfTest = health.NewSelfTestScheduler(
		schedule,
		health.SelfTest(s.Defaults),
		cfg.Telemetry.Health.CheckTimeout,
		deps.Logger.Slog(),
		s.metrics.SetSelfTestHealthy,
	)
	s.checker.RegisterCheck("self_test", s.selfTest.Check)

	return s, nil
}

func newDefaults(cfg *config.Config) (*defaults, error) {
	conf, err := cfg.Kanjize.Configuration()
	if err != nil {
		return nil, fmt.Errorf("invalid kanjize configuration: %w", err)
	}
	maxRunes := cfg.Server.MaxInputRunes
	if maxRunes <= 0 {
		maxRunes = config.DefaultMaxInputRunes
	}
	return &defaults{raw: cfg.Kanjize, configuration: conf, maxInputRunes: maxRunes}, nil
}

// Defaults returns the conversion configuration applied when a request does
// not override it.
func (s *Server) Defaults() kanjize.Configuration {
	return s.defaults.Load().configuration
}

// UpdateConfig applies a reloaded configuration. Conversion defaults, the
// input limit and the log level change immediately; listener and timeout
// settings only take effect after a restart.
func (s *Server) UpdateConfig(cfg *config.Config) error {
	d, err := newDefaults(cfg)
	if err != nil {
		s.metrics.RecordConfigReload(false)
		s.logger.Error("rejected configuration reload", "error", err)
		return err
	}
	if err := s.logger.SetLevel(cfg.Telemetry.Logging.Level); err != nil {
		s.metrics.RecordConfigReload(false)
		s.logger.Error("rejected configuration reload", "error", err)
		return err
	}

	s.defaults.Store(d)
	s.metrics.RecordConfigReload(true)

	if cfg.Server.ListenAddress != s.config.Server.ListenAddress {
		s.logger.Warn("listen address change requires a restart",
			"current", s.config.Server.ListenAddress,
			"configured", cfg.Server.ListenAddress,
		)
	}
	s.logger.Info("configuration reloaded",
		"style", string(d.configuration.Style()),
		"daiji", d.configuration.UseDaiji(),
		"max_input_runes", d.maxInputRunes,
	)
	return nil
}

// Start listens on the configured address and serves until ctx is
// cancelled or Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.ListenAddress, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled or Shutdown is called. The
// self test scheduler runs for the lifetime of the server.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:        s.Handler(),
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}
	tlsCfg := s.config.Server.TLS
	if tlsCfg.Enabled() {
		s.httpServer.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS13}
	}
	httpServer := s.httpServer
	s.mu.Unlock()

	if err := s.selfTest.Start(ctx); err != nil {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		ln.Close()
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting kanjize server",
			"address", ln.Addr().String(),
			"tls_enabled", tlsCfg.Enabled(),
			"metrics_enabled", s.metrics.Enabled(),
			"tracing_enabled", s.tracer.Enabled(),
		)
		var err error
		if tlsCfg.Enabled() {
			err = httpServer.ServeTLS(ln, tlsCfg.CertFile, tlsCfg.KeyFile)
		} else {
			err = httpServer.Serve(ln)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err, ok := <-errChan:
		if ok {
			s.selfTest.Stop()
			s.mu.Lock()
			s.isRunning = false
			s.mu.Unlock()
			return err
		}
		return nil
	}
}

// Shutdown gracefully shuts down the server, waiting up to the configured
// shutdown timeout for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.RLock()
		running := s.isRunning
		httpServer := s.httpServer
		s.mu.RUnlock()
		if !running {
			return
		}

		timeout := s.config.Server.ShutdownTimeout
		s.logger.Info("initiating graceful shutdown", "timeout", timeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("error during server shutdown", "error", err)
			shutdownErr = fmt.Errorf("server shutdown error: %w", err)
		}
		s.selfTest.Stop()

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("kanjize server stopped")
	})

	return shutdownErr
}

// Addr returns the address the server is listening on, or nil before it
// starts.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Checker returns the health checker backing /ready.
func (s *Server) Checker() *health.Checker {
	return s.checker
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := s.routes()
	route := middleware.MuxRoute(mux)

	var handler http.Handler = mux
	handler = middleware.Timeout(s.config.Server.WriteTimeout)(handler)
	handler = middleware.ConcurrencyLimit(s.limiter)(handler)
	handler = middleware.Logging(s.logger, s.metrics, route)(handler)
	handler = middleware.Tracing(s.tracer, route)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(s.logger)(handler)
	return handler
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/kanji", s.handleKanji)
	mux.HandleFunc("/v1/kanji", s.handleMethodNotAllowed)
	mux.HandleFunc("GET /v1/number", s.handleNumber)
	mux.HandleFunc("/v1/number", s.handleMethodNotAllowed)

	mux.Handle("/health", s.checker.LivenessHandler())
	mux.Handle("/ready", s.checker.ReadinessHandler())
	mux.Handle("/version", health.VersionHandler(s.deps.Version, s.deps.Commit, s.deps.BuildTime))

	if s.metrics.Enabled() {
		mux.Handle(s.metricsPath(), s.metrics.Handler())
	}

	mux.HandleFunc("/", s.handleNotFound)
	return mux
}

func (s *Server) metricsPath() string {
	if path := s.config.Telemetry.Metrics.Path; path != "" {
		return path
	}
	return config.DefaultMetricsPath
}
