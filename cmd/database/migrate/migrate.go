package migration

import (
	"fmt"
	"log"

	"github.com/ppdew9811-hash/eduvoice/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transaction{}); err != nil {
		log.Fatalf("Error migrating transaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CreditPackage{}); err != nil {
		log.Fatalf("Error migrating credit package database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CelebrityVoice{}); err != nil {
		log.Fatalf("Error migrating celebrity voice database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.VoiceModel{}); err != nil {
		log.Fatalf("Error migrating voice model database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Video{}); err != nil {
		log.Fatalf("Error migrating video database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
