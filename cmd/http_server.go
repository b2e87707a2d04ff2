package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrpulse/hrpulse/internal"
	"github.com/hrpulse/hrpulse/internal/analytics"
	"github.com/hrpulse/hrpulse/internal/board"
	boarddb "github.com/hrpulse/hrpulse/internal/board/sqlite"
	"github.com/hrpulse/hrpulse/internal/core/events"
	"github.com/hrpulse/hrpulse/internal/export"
	"github.com/hrpulse/hrpulse/internal/hrdata"
	"github.com/hrpulse/hrpulse/internal/prefs"
	prefsdb "github.com/hrpulse/hrpulse/internal/prefs/sqlite"
	"github.com/hrpulse/hrpulse/internal/transport/rest"
	"github.com/hrpulse/hrpulse/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server backing the dashboard API`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if sqlDB, err := deps.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				deps.Logger.Error("database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database pool: %w", err)
	}

	bus := events.NewEventBus(log)
	bus.Subscribe(analytics.EventDatasetRegenerated, func(ctx context.Context, event events.Event) error {
		log.Info("dataset regenerated", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})

	boardService := board.NewService(boarddb.NewBoardRepository(db), log)
	if err := boardService.EnsureDefaults(); err != nil {
		return nil, fmt.Errorf("failed to seed default boards: %w", err)
	}
	prefsService := prefs.NewService(prefsdb.NewPreferenceRepository(db), bus, log)

	engine := analytics.NewEngine(newDataset(config.Dashboard), log,
		analytics.WithDemoMode(config.Dashboard.DemoMode),
		analytics.WithEventBus(bus),
		// regeneration always yields a fresh dataset, even when the
		// startup seed is pinned
		analytics.WithDatasetSource(func() *hrdata.HRData {
			return newDataset(internal.DashboardConfig{})
		}),
	)

	analyticsHandler := analytics.NewHandler(engine, prefsService)
	boardHandler := board.NewHandler(boardService)
	prefsHandler := prefs.NewHandler(prefsService)
	exportHandler := export.NewHandler(engine)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, sqlDB, config.Server.AllowedOrigins,
		analyticsHandler, boardHandler, prefsHandler, exportHandler, log)

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		Router: router,
	}, nil
}

// newDataset builds a normalized synthetic snapshot. A zero seed keeps the
// generator on its time-based source so every call yields fresh data.
func newDataset(cfg internal.DashboardConfig) *hrdata.HRData {
	opts := []hrdata.GeneratorOption{}
	if cfg.Seed != 0 {
		opts = append(opts, hrdata.WithSeed(cfg.Seed))
	}
	return hrdata.Normalize(hrdata.NewGenerator(opts...).Generate())
}

func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
