package database

import (
	"fmt"

	"gorm.io/gorm"

	"cuthours/models"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Portfolio{},
		&models.ChatSession{},
		&models.ChatMessage{},
		&models.ContactResponse{},
	)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
