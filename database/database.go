package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lms/config"
	"lms/models"
	courseModels "lms/models/course"
	"lms/security"
)

// Connect opens the process-wide engine, configures pooling and runs
// migrations. The returned handle is passed explicitly to every component
// that needs the store.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector := openDialector(cfg.DatabaseURL)

	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey so the repositories can surface Conflict.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// openDialector picks the driver from the connection string. Anything that
// is not a Postgres DSN is treated as a sqlite file path, the development
// default.
func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}

// Close disposes the engine once at shutdown.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error fetching database instance on shutdown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

// SeedAdmin creates the bootstrap admin identity from ADMIN_EMAIL and
// ADMIN_PASSWORD when both are set and the email is still free.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	email := models.NormalizeEmail(cfg.AdminEmail)
	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return nil
	}

	hash, err := security.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Email:        email,
		Name:         "Administrator",
		Role:         models.RoleAdmin,
		PasswordHash: &hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("Seeded admin user %s", email)
	return nil
}
