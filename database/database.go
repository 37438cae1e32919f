package database

import (
	"avacademy/config"
	"avacademy/models"
	courseModels "avacademy/models/course"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	// Build the PostgreSQL connection string
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	RunMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Content{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Enrollment{},
		&courseModels.LessonCompletion{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// EnsureAdminUser creates the default admin account on first boot so the
// dashboard is reachable before any users exist.
func EnsureAdminUser() {
	db := Database.Db

	var count int64
	if err := db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "admin", false).Count(&count).Error; err != nil {
		log.Printf("Error checking for admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	adminEmail := config.AppConfig.AdminEmail

	var existing models.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Println("Warning: Admin email already exists, skipping default admin creation.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing default admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Admin",
		Email:    adminEmail,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating default admin user: %v", err)
		return
	}
	log.Println("Default admin user created.")
}
