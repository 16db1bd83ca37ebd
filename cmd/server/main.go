package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"viewcrumbs_echo/internal/config"
	"viewcrumbs_echo/internal/handlers"
	appMiddleware "viewcrumbs_echo/internal/middleware"
	"viewcrumbs_echo/internal/services"
)

var (
	cfg         *config.Config
	logger      *zap.Logger
	templateDir string
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "server",
		Short:        "Admin site with breadcrumb navigation",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, envLoaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded

			logger, err = newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			if !envLoaded {
				logger.Info("No .env file found, using system environment")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&templateDir, "templates", "web/templates", "directory holding layouts, partials and pages")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "routes",
		Short: "Print the named routes the breadcrumb helpers can reverse",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := echo.New()
			handlers.Register(e, handlers.Deps{Breadcrumbs: cfg.Breadcrumbs, Log: logger})
			printRoutes(cmd, e)
			return nil
		},
	})
	return root
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func printRoutes(cmd *cobra.Command, e *echo.Echo) {
	for _, r := range e.Routes() {
		if r.Method != http.MethodGet {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", r.Name, r.Path)
	}
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Database
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL not set")
	}
	db, err := services.InitDB(cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := services.AutoMigrate(db, logger); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Redis is optional; pages fall back to the database
	var cache *services.RedisCache
	if cfg.RedisURL != "" {
		cache, err = services.NewRedisCache(ctx, cfg.RedisURL, "viewcrumbs:", logger)
		if err != nil {
			logger.Warn("Redis unavailable, caching disabled", zap.Error(err))
		} else {
			defer cache.Close()
		}
	}

	renderer, err := NewTemplateRenderer(templateDir, cfg.Breadcrumbs)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Static("/static", "web/static")

	pages := handlers.Register(e, handlers.Deps{
		DB:          db,
		Cache:       cache,
		Breadcrumbs: cfg.Breadcrumbs,
		Log:         logger,
	})
	e.HTTPErrorHandler = appMiddleware.NewErrorHandler(pages, logger)

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
