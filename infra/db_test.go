package infra

import (
	"gin-videoapi/logger"
	"gin-videoapi/models"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func TestSetupDB_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := SetupDB(DBConfig{SQLitePath: path}, "dev")
	require.NoError(t, err)

	tokenDB, err := SetupTokenDB("", db)
	require.NoError(t, err)
	assert.Same(t, db, tokenDB)

	require.NoError(t, Migrate(db, tokenDB))
	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Video{}))
	assert.True(t, db.Migrator().HasTable(&models.RevokedToken{}))

	closeDB(t, db)
}

func TestSetupTokenDB_SeparateFile(t *testing.T) {
	dir := t.TempDir()

	db, err := SetupDB(DBConfig{SQLitePath: filepath.Join(dir, "app.db")}, "dev")
	require.NoError(t, err)
	tokenDB, err := SetupTokenDB(filepath.Join(dir, "token_blacklist.db"), db)
	require.NoError(t, err)
	assert.NotSame(t, db, tokenDB)

	require.NoError(t, Migrate(db, tokenDB))
	assert.True(t, tokenDB.Migrator().HasTable(&models.RevokedToken{}))
	assert.False(t, db.Migrator().HasTable(&models.RevokedToken{}))
	assert.False(t, tokenDB.Migrator().HasTable(&models.User{}))

	closeDB(t, db)
	closeDB(t, tokenDB)
}

func TestOpenSQLite_LogsThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	original := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = original })

	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db, db))
	defer closeDB(t, db)

	var user models.User
	err = db.First(&user, "username = ?", "nobody").Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())

	var count int64
	err = db.Table("missing_table").Count(&count).Error
	require.Error(t, err)

	entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "gorm", entries[0].LoggerName)
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
