package db

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gearmart-be/internal/config"
	"gearmart-be/internal/logger"

	_ "github.com/lib/pq"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

// InitDB opens the Postgres pool and verifies the connection. The process
// cannot run without a database, so any failure here is fatal.
func InitDB(cfg *config.Config) *sql.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.L().Fatal("opening database", zap.Error(err))
	}

	pool.SetMaxOpenConns(maxOpenConns)
	pool.SetMaxIdleConns(maxIdleConns)
	pool.SetConnMaxLifetime(connMaxLifetime)

	if err := pool.Ping(); err != nil {
		logger.L().Fatal("pinging database", zap.Error(err))
	}

	logger.L().Info("database connection established",
		zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	return pool
}
