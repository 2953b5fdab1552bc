package main

import (
	"log"

	"charterflow-be/internal/config"
	"charterflow-be/internal/model"
	"charterflow-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database: ", err)
	}

	color.Cyan("Starting GORM migration (%s)...", cfg.Database.Driver)

	models := []interface{}{
		&model.User{},
		&model.Workspace{},
		&model.Notebook{},
		&model.Document{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			color.Red("Migration failed for %T: %v", m, err)
			log.Fatal(err)
		}
		color.Green("Migrated %T", m)
	}

	color.Green("Migration complete.")
}
