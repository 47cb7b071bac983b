package infra

import (
	"fmt"
	"gin-videoapi/logger"
	"gin-videoapi/models"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"moul.io/zapgorm2"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormConfig はgormのログをzapに流す。
// 見つからないレコードは通常の結果なのでエラーとして記録しない。
func gormConfig() *gorm.Config {
	gormLog := zapgorm2.New(logger.Log.Named("gorm"))
	gormLog.LogLevel = gormlogger.Warn
	gormLog.SlowThreshold = slowQueryThreshold
	gormLog.IgnoreRecordNotFoundError = true

	return &gorm.Config{
		TranslateError: true,
		Logger:         gormLog,
	}
}

func SetupDB(cfg DBConfig, env string) (*gorm.DB, error) {
	// DB_NAMEが設定されている場合はPostgreSQLを使用
	if cfg.Name != "" {
		// 本番環境ではsslmode=require、それ以外はsslmode=disable
		sslmode := "disable"
		if env == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.Port,
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logger.Log.Info("Setup postgres database",
			zap.String("host", cfg.Host),
			zap.String("dbname", cfg.Name),
		)
		return db, nil
	}

	db, err := OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Setup sqlite database", zap.String("path", cfg.SQLitePath))
	return db, nil
}

// SetupTokenDB は失効トークン用のDBを返す。パスが空ならメインのDBを共有する。
func SetupTokenDB(path string, mainDB *gorm.DB) (*gorm.DB, error) {
	if path == "" {
		return mainDB, nil
	}
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to token database: %w", err)
	}
	logger.Log.Info("Setup token revocation SQLite database", zap.String("path", path))
	return db, nil
}

// OpenSQLite はSQLiteに接続する。":memory:"は接続ごとに別DBになるため接続数を1に制限する。
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite %s: %w", path, err)
	}
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func Migrate(db *gorm.DB, tokenDB *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Video{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := tokenDB.AutoMigrate(&models.RevokedToken{}); err != nil {
		return fmt.Errorf("failed to migrate token database: %w", err)
	}
	return nil
}
