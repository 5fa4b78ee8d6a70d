package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"quizmaker_backend/internals/configs"
)

// ConnectDB opens the store selected by DB_DRIVER.
func ConnectDB(cfg configs.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormLogger.Warn
	if !cfg.IsProduction() {
		level = gormLogger.Info
	}
	gormCfg := &gorm.Config{
		Logger:         configs.NewGormLogger(log, level),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "postgres":
		log.Info("🔌 connecting to PostgreSQL")
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseURL,
			PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
		}), gormCfg)
	case "sqlite":
		log.Info("🔌 opening SQLite", zap.String("path", cfg.SQLitePath))
		db, err = OpenSQLite(cfg.SQLitePath, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB driver %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == "postgres" {
		TunePool(db, log)
	}
	log.Info("✅ DB connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}

// SQLiteDriverName is go-sqlite3 with unicode_lower(text) registered on every
// connection. SQLite's own LOWER only folds ASCII.
const SQLiteDriverName = "sqlite3_quizmaker"

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("unicode_lower", strings.ToLower, true)
		},
	})
}

// OpenSQLite opens a SQLite database. path may be ":memory:" or a file path.
func OpenSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if gormCfg == nil {
		gormCfg = &gorm.Config{TranslateError: true}
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: SQLiteDriverName,
		DSN:        path + sep + "_busy_timeout=5000",
	}), gormCfg)
	if err != nil {
		return nil, err
	}
	// one writer keeps SQLite away from "database is locked"
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func TunePool(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("pool tune err", zap.Error(err))
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
