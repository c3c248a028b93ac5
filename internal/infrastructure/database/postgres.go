package database

import (
	"fmt"

	"clinic-booking/config"
	"clinic-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// Migrate creates the accounts and documents tables and the GIN index used
// by containment filters.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Account{}, &entity.Document{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_documents_data ON documents USING GIN (data jsonb_path_ops)").Error; err != nil {
		return fmt.Errorf("failed to create documents data index: %w", err)
	}

	logrus.Info("Database schema is up to date")
	return nil
}
