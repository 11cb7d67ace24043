package config

import (
	"fmt"
	"log"
	"os"

	"github.com/pmarsh41/my-agent/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// LoadEnv pulls .env into the process environment when present. Deployed
// environments set real variables instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.MealFood{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
