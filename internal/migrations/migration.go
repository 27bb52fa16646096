package migrations

import (
	"fmt"

	"brick_manager/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func allModels() []interface{} {
	return []interface{}{
		&models.Brick{},
		&models.Tractor{},
		&models.Laborer{},
		&models.Order{},
		&models.Invoice{},
		&models.Setting{},
		&models.Sequence{},
	}
}

// AutoMigrate creates or updates every table the store uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(allModels()...)
}

// RunMigrations drops and recreates all tables, then writes the default
// billing settings.
func RunMigrations(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations...")

	log.Info("Dropping existing tables...")
	if err := db.Migrator().DropTable(allModels()...); err != nil {
		log.Warn("Error dropping tables", zap.Error(err))
	}

	log.Info("Creating tables...")
	if err := AutoMigrate(db); err != nil {
		return err
	}

	if err := SeedDefaultSettings(db, log); err != nil {
		log.Warn("Failed to create default settings", zap.Error(err))
	}

	log.Info("Database migrations completed successfully!")
	return nil
}

// DefaultSettings are the billing figures a new installation starts with.
func DefaultSettings() []models.Setting {
	return []models.Setting{
		{Key: models.SettingDeliveryCharge, Value: "2500"},
		{Key: models.SettingLaborCharge, Value: "1000"},
		{Key: models.SettingTaxRate, Value: "0.18"},
	}
}

// SeedDefaultSettings inserts the default settings, leaving keys that
// already have a value untouched.
func SeedDefaultSettings(db *gorm.DB, log *zap.Logger) error {
	settings := DefaultSettings()
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&settings).Error
	if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	log.Info("Default settings ensured", zap.Int("count", len(settings)))
	return nil
}
