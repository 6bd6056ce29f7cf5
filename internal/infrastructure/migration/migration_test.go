package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
	"github.com/eventora/eventora/internal/shared/logger"
)

func TestScripts_AreOrderedGooseFiles(t *testing.T) {
	names, err := Scripts()
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, "scripts/00001_init_schema.sql", names[0])
	assert.Equal(t, "scripts/00002_casbin_rule.sql", names[1])
	assert.Equal(t, "scripts/00003_user_contact.sql", names[2])

	for _, name := range names {
		body, err := fs.ReadFile(embeddedScripts, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestInitSchema_CoversEveryModelTable(t *testing.T) {
	body, err := fs.ReadFile(embeddedScripts, "scripts/00001_init_schema.sql")
	require.NoError(t, err)

	for _, table := range []string{
		models.UserModel{}.TableName(),
		models.CategoryModel{}.TableName(),
		models.EventModel{}.TableName(),
		models.TicketTypeModel{}.TableName(),
		models.OrderModel{}.TableName(),
		models.OrderItemModel{}.TableName(),
		models.TicketModel{}.TableName(),
		models.WaitlistEntryModel{}.TableName(),
	} {
		assert.True(t, strings.Contains(string(body), "CREATE TABLE "+table+" ("), table)
	}
}

func TestManager_DevelopmentUsesAutoMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m := NewManager("development", logger.NewNop())
	assert.Equal(t, "gorm_auto_migrate", m.Strategy().GetName())
	require.NoError(t, m.Migrate(db))

	for _, model := range models.All() {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestManager_ProductionUsesGoose(t *testing.T) {
	m := NewManager("production", logger.NewNop())
	assert.Equal(t, "goose", m.Strategy().GetName())
}
