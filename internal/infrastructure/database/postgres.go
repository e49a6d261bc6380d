package database

import (
	"fmt"

	"meddesk-hms/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresConnection opens the patient records database. Transactions are
// managed explicitly by the usecases, so gorm's implicit per-write
// transaction is switched off.
func NewPostgresConnection(cfg config.DBConfig, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel(debug)),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

	logrus.WithFields(logrus.Fields{
		"host":      cfg.Server,
		"database":  cfg.Name,
		"auth_mode": cfg.AuthMode,
	}).Info("Successfully connected to PostgreSQL database")

	return db, nil
}

func logLevel(debug bool) logger.LogLevel {
	if debug {
		return logger.Info
	}
	return logger.Warn
}
