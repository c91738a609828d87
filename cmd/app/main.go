package main

import (
	"fmt"
	"log"

	"github.com/ppdew9811-hash/eduvoice/cmd/config"
	migration "github.com/ppdew9811-hash/eduvoice/cmd/database/migrate"
	"github.com/ppdew9811-hash/eduvoice/internal/utils"
	"gorm.io/gorm"
)

func main() {
	utils.LoadConfig()

	// Without DB_HOST the app runs on the in-memory demo store.
	var db *gorm.DB
	if utils.GetConfig("DB_HOST") != "" {
		var err error
		db, err = config.ConnectDB()
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	} else {
		log.Println("DB_HOST not set, running with in-memory storage")
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "3000"
	}
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
