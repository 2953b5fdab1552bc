package main

import (
	"log"
	"time"

	"charterflow-be/internal/config"
	"charterflow-be/internal/model"
	"charterflow-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	demoEmail    = "demo@charterflow.dev"
	demoPassword = "demo-password"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database: ", err)
	}

	color.Cyan("Seeding demo data...")

	var existing model.User
	err = db.Where("email = ?", demoEmail).First(&existing).Error
	if err == nil {
		color.Yellow("Demo user already exists, nothing to do.")
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatal("Error: Failed to check for demo user: ", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash demo password: ", err)
	}
	hashStr := string(hash)

	now := time.Now()
	user := model.User{
		Id:              uuid.New(),
		Email:           demoEmail,
		FirstName:       "Demo",
		LastName:        "User",
		PasswordHash:    &hashStr,
		IsActive:        true,
		IsEmailVerified: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Error: Failed to create demo user: ", err)
	}
	color.Green("Created demo user %s", demoEmail)

	workspace := model.Workspace{
		Id:        uuid.New(),
		Name:      "Personal Workspace",
		Type:      "personal",
		IsActive:  true,
		OwnerId:   user.Id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(&workspace).Error; err != nil {
		log.Fatal("Error: Failed to create demo workspace: ", err)
	}
	color.Green("Created personal workspace for demo user")

	color.Green("Seeding complete.")
}
