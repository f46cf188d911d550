package config

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"yultimate/models"
	"yultimate/services/logger"
)

// ConnectDB opens the PostgreSQL pool.
func ConnectDB(cfg *Config, z *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: cfg.DSN(),
	}), &gorm.Config{
		Logger:  logger.NewGormLogger(z),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	host, name := cfg.DBTarget()
	z.Info("database connected", zap.String("host", host), zap.String("name", name))
	return db, nil
}

// AutoMigrate creates or updates every table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

// CloseDB closes the underlying pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
