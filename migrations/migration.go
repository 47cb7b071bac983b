package main

import (
	"gin-videoapi/infra"
	"gin-videoapi/logger"
	"log"

	"go.uber.org/zap"
)

func main() {
	envErr := infra.Initialize()
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFile, cfg.IsProd()); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Log.Info("No .env file found; using environment variables", zap.Error(envErr))
	}

	db, err := infra.SetupDB(cfg.DB, cfg.Env)
	if err != nil {
		logger.Log.Fatal("Failed to setup database", zap.Error(err))
	}
	tokenDB, err := infra.SetupTokenDB(cfg.TokenDBPath, db)
	if err != nil {
		logger.Log.Fatal("Failed to setup token database", zap.Error(err))
	}

	if err := infra.Migrate(db, tokenDB); err != nil {
		logger.Log.Fatal("Failed to migrate", zap.Error(err))
	}
	logger.Log.Info("Migration completed")
}
