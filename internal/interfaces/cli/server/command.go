package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/litrevu/litrevu/internal/infrastructure/config"
	"github.com/litrevu/litrevu/internal/infrastructure/database"
	"github.com/litrevu/litrevu/internal/infrastructure/migration"
	"github.com/litrevu/litrevu/internal/infrastructure/repository"
	httpRouter "github.com/litrevu/litrevu/internal/interfaces/http"
	sharedConfig "github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/constants"
	"github.com/litrevu/litrevu/internal/shared/goroutine"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

const sessionSweepInterval = time.Hour

var (
	env         string
	configPath  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the LITRevu web server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ginMode := mapEnvToGinMode(env)
	if err := logger.Init(&cfg.Logger, ginMode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"environment", env,
		"driver", cfg.Database.Driver,
		"auto_migrate", autoMigrate)

	gin.SetMode(ginMode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := handleMigrations(ctx, cfg, log); err != nil {
		return err
	}

	router, err := httpRouter.NewRouter(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()
	router.SetupRoutes()

	startSessionSweeper(ctx, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", ginMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// handleMigrations applies the schema when asked to and otherwise reports
// the current goose version for MySQL.
func handleMigrations(ctx context.Context, cfg *config.Config, log logger.Interface) error {
	if autoMigrate {
		if env == constants.EnvProduction {
			log.Warnw("auto-migration is enabled in production environment")
		}
		if err := migration.NewManager(cfg.Database.Driver).Migrate(ctx, database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	if cfg.Database.Driver != sharedConfig.DriverMySQL {
		return nil
	}
	strategy := migration.NewGooseStrategy("mysql", migration.DefaultScriptsDir)
	version, err := strategy.GetVersion(ctx, database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)
	return nil
}

// startSessionSweeper removes expired session rows until ctx is done.
func startSessionSweeper(ctx context.Context, log logger.Interface) {
	sessions := repository.NewSessionRepository(database.Get())

	goroutine.Every(ctx, log, "session-sweeper", sessionSweepInterval, func(ctx context.Context) {
		removed, err := sessions.DeleteExpired(ctx)
		if err != nil {
			log.Warnw("failed to delete expired sessions", "error", err)
			return
		}
		if removed > 0 {
			log.Infow("expired sessions deleted", "count", removed)
		}
	})
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
