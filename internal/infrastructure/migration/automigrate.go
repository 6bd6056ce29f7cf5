package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
	"github.com/eventora/eventora/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Used in development and by the sqlite-backed tests.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: log.With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, targets ...interface{}) error {
	if len(targets) == 0 {
		targets = models.All()
	}

	s.logger.Infow("running gorm auto-migrate", "models_count", len(targets))
	if err := db.AutoMigrate(targets...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
