package migration

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/litrevu/litrevu/internal/infrastructure/persistence/models"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

//go:embed scripts/*.sql
var embeddedScripts embed.FS

const scriptsDir = "scripts"

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date
	Migrate(ctx context.Context, db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// AutoMigrateStrategy derives the schema from the gorm models. Used for
// SQLite development databases and tests.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy() *AutoMigrateStrategy {
	return &AutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *AutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("starting gorm auto migration", "models_count", len(all))
	if err := db.WithContext(ctx).AutoMigrate(all...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *AutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// goose keeps its dialect and base filesystem in package state.
var gooseMu sync.Mutex

// GooseStrategy applies the versioned MySQL scripts embedded in the binary.
type GooseStrategy struct {
	dialect string
	// createDir is where Create writes new scripts on disk.
	createDir string
	logger    logger.Interface
}

func NewGooseStrategy(dialect, createDir string) *GooseStrategy {
	return &GooseStrategy{
		dialect:   dialect,
		createDir: createDir,
		logger:    logger.NewLogger().With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(embeddedScripts)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, scriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, sqlDB, scriptsDir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully", "steps", steps)
	return nil
}

func (s *GooseStrategy) GetVersion(ctx context.Context, db *gorm.DB) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	if err := goose.StatusContext(ctx, sqlDB, scriptsDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes a new SQL script into createDir on disk.
func (s *GooseStrategy) Create(name string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(nil)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	goose.SetSequential(true)

	if err := goose.Create(nil, s.createDir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", s.createDir)
	return nil
}
