package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"quizmaker_backend/internals/configs"
	database "quizmaker_backend/internals/databases"
	routes "quizmaker_backend/internals/route"
	"quizmaker_backend/internals/seeds"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := configs.NewLogger(cfg)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("auto migrate failed", zap.Error(err))
		}
		logger.Info("✅ schema migrated")
	}
	if cfg.DBSeed {
		if err := seeds.RunAllSeeds(context.Background(), db, cfg, logger); err != nil {
			logger.Fatal("seeding failed", zap.Error(err))
		}
	}

	app := routes.NewApp(cfg, db, logger)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		logger.Info("✅ Listening", zap.String("port", cfg.Port))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Warn("shutdown error", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		logger.Warn("db close error", zap.Error(err))
	}
}
