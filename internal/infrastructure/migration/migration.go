package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

// DefaultScriptsDir is where `migrate create` writes new scripts.
const DefaultScriptsDir = "./internal/infrastructure/migration/scripts"

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose scripts for MySQL and gorm AutoMigrate for SQLite.
func NewManager(driver string) *Manager {
	var strategy Strategy
	switch driver {
	case config.DriverMySQL:
		strategy = NewGooseStrategy("mysql", DefaultScriptsDir)
	default:
		strategy = NewAutoMigrateStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
