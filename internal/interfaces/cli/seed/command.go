package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/litrevu/litrevu/internal/infrastructure/auth"
	"github.com/litrevu/litrevu/internal/infrastructure/config"
	"github.com/litrevu/litrevu/internal/infrastructure/database"
	"github.com/litrevu/litrevu/internal/infrastructure/migration"
	"github.com/litrevu/litrevu/internal/infrastructure/persistence/seeds"
	"github.com/litrevu/litrevu/internal/infrastructure/repository"
	"github.com/litrevu/litrevu/internal/shared/db"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

var (
	env         string
	configPath  string
	file        string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data",
		Long:  `Load users, follows, tickets, comments and reviews from a YAML fixtures file. Rows that already exist are left alone.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/fixtures.yaml", "Fixtures file")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()

	fixtures, err := seeds.Decode(f)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()
	gdb := database.Get()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if autoMigrate {
		if err := migration.NewManager(cfg.Database.Driver).Migrate(ctx, gdb); err != nil {
			return err
		}
	}

	seeder := seeds.NewSeeder(
		repository.NewUserRepository(gdb, log),
		repository.NewFollowRepository(gdb),
		repository.NewTicketRepository(gdb),
		repository.NewCommentRepository(gdb),
		repository.NewReviewRepository(gdb),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	var res *seeds.Result
	err = db.NewTransactionManager(gdb).RunInTransaction(ctx, func(txCtx context.Context) error {
		var seedErr error
		res, seedErr = seeder.Seed(txCtx, fixtures)
		return seedErr
	})
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Printf("Seeded %d users, %d follows, %d tickets, %d comments, %d reviews\n",
		res.Users, res.Follows, res.Tickets, res.Comments, res.Reviews)
	return nil
}
