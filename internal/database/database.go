package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recipeshare/backend/config"
	"github.com/recipeshare/backend/internal/models"
)

// New opens a Postgres connection from the configured DSN and migrates the
// schema. The returned handle is passed down to services explicitly; there is
// no package-level connection state.
func New(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.Env == config.Test {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	if cfg.Env != config.Test {
		log.Printf("Successfully connected to database")
	}
	return db, nil
}

// Migrate brings the schema up to date for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.Step{},
		&models.Comment{},
	)
}
