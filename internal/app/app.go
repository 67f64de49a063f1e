package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pantig-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pantig-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/pantig-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/pantig-backend/internal/adapter/postgres/override"
	"github.com/heartmarshall/pantig-backend/internal/auth"
	"github.com/heartmarshall/pantig-backend/internal/config"
	"github.com/heartmarshall/pantig-backend/internal/service/syllabifier"
	"github.com/heartmarshall/pantig-backend/internal/transport/middleware"
	"github.com/heartmarshall/pantig-backend/internal/transport/rest"
	"github.com/heartmarshall/pantig-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and serves HTTP until ctx is cancelled
// or the process receives SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	dict := NewDictionary(cfg.Syllabifier, logger)
	if cfg.Syllabifier.WarmOnStart {
		report := dict.Warm()
		logger.Info("dictionary built",
			slog.Int("entries", dict.Len()),
			slog.Int("curated", report.Curated),
			slog.Int("generated", report.Generated),
			slog.Int("failures", len(report.Failures)),
			slog.Duration("duration", report.Duration),
		)
	}

	svc, err := syllabifier.NewService(
		logger,
		dict,
		override.New(pool),
		catalog.New(pool),
		audit.New(pool),
		postgres.NewTxManager(pool),
		syllabifier.Config{
			MemoSize:        cfg.Syllabifier.MemoSize,
			BatchLimit:      cfg.Syllabifier.BatchLimit,
			OverrideTimeout: cfg.Syllabifier.OverrideTimeout,
			CatalogMaxLimit: cfg.Syllabifier.CatalogMaxLimit,
		},
	)
	if err != nil {
		return fmt.Errorf("create syllabifier service: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var rateLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.ClientTTL)
		defer limiter.Stop()
		rateLimit = limiter.Limit()
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Health:    rest.NewHealthHandler(pool, dict, Version),
		Syllables: rest.NewSyllableHandler(svc, logger),
		Admin:     rest.NewAdminHandler(svc, logger),
		Middleware: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			rateLimit,
			middleware.Auth(middleware.JWTValidator{Manager: jwtManager}),
		},
	})

	srv := newHTTPServer(ctx, cfg.Server, handler)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

// newHTTPServer builds the HTTP server. Request contexts carry the values of
// ctx but not its cancellation: a shutdown signal stops accepting
// connections and Shutdown drains the requests already in flight.
func newHTTPServer(ctx context.Context, cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
}
