package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loan-calculator/config"
	httpLayer "loan-calculator/http"
	"loan-calculator/repository"
	"loan-calculator/service"
	"loan-calculator/widget"
)

const sweepInterval = time.Minute

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator page and its API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	layout, err := cfg.LoadLayout()
	if err != nil {
		return err
	}

	cache, closeCache := newCache(parent, cfg, logger)
	defer closeCache()

	loanRepo := repository.NewLoanRepositoryMemory(cfg.HistoryLimit)
	loanService := service.NewLoanService(loanRepo, cache, logger)
	tenureService := service.NewTenureQuoteService(loanService, logger)

	store := widget.NewStore(layout, cfg.MaxSessions, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Page:   httpLayer.NewPageHandler(store, layout, logger),
		Widget: httpLayer.NewWidgetHandler(store, logger),
		Loan:   httpLayer.NewLoanHandler(loanService, logger),
		Tenure: httpLayer.NewTenureHandler(tenureService, logger),
	}, rateLimiter, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go store.RunSweeper(ctx, sweepInterval, cfg.SessionIdle)

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("loan calculator listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.WithError(err).Error("server failed")
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown failed")
		return err
	}

	logger.Info("server exited")
	return nil
}

// newCache picks redis when configured and reachable, the in-memory cache
// otherwise.
func newCache(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return repository.NewMockCache(), func() {}
	}

	rc := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL, logger)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		logger.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unreachable, using in-memory cache")
		_ = rc.Close()
		return repository.NewMockCache(), func() {}
	}

	logger.WithField("addr", cfg.RedisAddr).Info("using redis cache")
	return rc, func() {
		if err := rc.Close(); err != nil {
			logger.WithError(err).Warn("closing redis failed")
		}
	}
}
