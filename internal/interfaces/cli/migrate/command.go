package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litrevu/litrevu/internal/infrastructure/config"
	"github.com/litrevu/litrevu/internal/infrastructure/database"
	"github.com/litrevu/litrevu/internal/infrastructure/migration"
	sharedConfig "github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	steps      int
	scriptsDir string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations. SQLite databases are brought up to date with the model definitions instead of versioned scripts.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations (MySQL only).`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database (MySQL only).`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new sequential SQL migration file.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&scriptsDir, "dir", migration.DefaultScriptsDir, "Directory the new script is written to")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv(connect bool) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if connect {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return cfg, log, nil
}

func gooseStrategy(cfg *config.Config) (*migration.GooseStrategy, error) {
	if cfg.Database.Driver != sharedConfig.DriverMySQL {
		return nil, fmt.Errorf("versioned migrations are only used with the %s driver", sharedConfig.DriverMySQL)
	}
	return migration.NewGooseStrategy("mysql", migration.DefaultScriptsDir), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "driver", cfg.Database.Driver)

	if err := migration.NewManager(cfg.Database.Driver).Migrate(commandContext(cmd), database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseStrategy(cfg)
	if err != nil {
		return err
	}

	log.Infow("running down migrations", "environment", env, "steps", steps)
	if err := strategy.MigrateDown(commandContext(cmd), database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseStrategy(cfg)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	log.Infow("checking migration status", "environment", env)

	version, err := strategy.GetVersion(ctx, database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", version)

	if err := strategy.Status(ctx, database.Get()); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv(false)
	if err != nil {
		return err
	}

	strategy := migration.NewGooseStrategy("mysql", scriptsDir)
	if err := strategy.Create(name); err != nil {
		return err
	}

	log.Infow("migration created successfully", "name", name, "dir", scriptsDir)
	fmt.Printf("Migration '%s' created in %s\n", name, scriptsDir)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
