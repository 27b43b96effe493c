package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_flashcards/internal/config"
	"go_flashcards/internal/handlers"
	"go_flashcards/internal/middleware"
	"go_flashcards/internal/repository"
	"go_flashcards/internal/service"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var autoMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger, autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run schema migration before serving")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, autoMigrate bool) error {
	logger.Info("Application starting...", slog.String("version", config.AppVersion))

	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		} else {
			logger.Info("Database connection closed.")
		}
	}()

	if autoMigrate {
		if err := repository.Migrate(ctx, db); err != nil {
			logger.Error("Migration failed", slog.Any("error", err))
			return err
		}
	}

	// Redis が無ければプロセス内キャッシュで集計回数を抑える
	cache := repository.NewMemoryDeckStatsCache(cfg.Cache.TTL)
	if cfg.Cache.RedisAddr != "" {
		redisCache, err := repository.NewRedisDeckStatsCache(ctx, cfg.Cache)
		if err != nil {
			logger.Warn("Redis unavailable, using in-process deck stats cache", slog.Any("error", err))
		} else {
			cache = redisCache
		}
	}
	defer cache.Close()

	// Dependency Injection
	deckRepo := repository.NewGormDeckRepository()
	cardRepo := repository.NewGormCardRepository()
	gradeRepo := repository.NewGormGradeRepository()
	userRepo := repository.NewGormUserRepository()

	userService := service.NewUserService(db, userRepo)
	deckService := service.NewDeckService(db, deckRepo, cache, cfg.App)
	cardService := service.NewCardService(db, deckRepo, cardRepo, cache, cfg.App)
	learningService := service.NewLearningService(db, deckRepo, cardRepo, gradeRepo, service.NewDefaultCardSelector(cfg.App.MaxRedraws))

	authenticate, err := middleware.NewAuthenticator(cfg.Auth, config.IsDevEnv())
	if err != nil {
		logger.Error("Invalid authentication settings", slog.Any("error", err))
		return err
	}
	if !cfg.Auth.Enabled {
		logger.Warn("Authentication disabled: trusting X-User-ID header (APP_ENV=dev)")
	}
	verify := middleware.RequireKnownCaller(userService)

	router := handlers.NewRouter(handlers.Router{
		Decks:    handlers.NewDeckHandler(deckService, logger),
		Cards:    handlers.NewCardHandler(cardService, logger),
		Learning: handlers.NewLearningHandler(learningService, logger),
		Users:    handlers.NewUserHandler(userService, logger),
		Health:   handlers.NewHealthHandler(db, logger),
		Auth: func(next http.Handler) http.Handler {
			return authenticate(verify(next))
		},
	}, cfg.CORS, logger)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful Shutdown
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	select {
	case err := <-errCh:
		logger.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		return err
	case <-sigCtx.Done():
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}
	logger.Info("Server exiting")
	return nil
}
