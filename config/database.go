package config

import (
	"fmt"

	"github.com/jai-619/payment-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and migrates the schema
func InitDB() error {
	if App == nil {
		if _, err := LoadConfig(); err != nil {
			return fmt.Errorf("failed to load config: %v", err)
		}
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		App.DBHost, App.DBPort, App.DBUser, App.DBPassword, App.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	DB = db

	if err := DB.AutoMigrate(&models.Transaction{}); err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}

	return nil
}
