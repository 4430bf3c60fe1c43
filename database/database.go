package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/Juantrevi/Backend-Learning-Management-System/configs"
	"github.com/Juantrevi/Backend-Learning-Management-System/models"
)

// Connect opens the Postgres connection and returns the handle. The
// handle is passed explicitly to whoever needs it; there is no
// package-level connection.
func Connect() (*gorm.DB, error) {
	dsn := config.Config("DATABASE_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Teacher{},
		&models.Category{},
		&models.Course{},
		&models.Variant{},
		&models.VariantItem{},
		&models.Country{},
		&models.Cart{},
		&models.CartOrder{},
		&models.CartOrderItem{},
		&models.Coupon{},
		&models.EnrolledCourse{},
		&models.CompletedLesson{},
		&models.Note{},
		&models.Review{},
		&models.WishList{},
		&models.QuestionAnswer{},
		&models.QuestionAnswerMessage{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	fmt.Println("✅ Database migration successful")
	return nil
}

// SeedAdmin creates the platform admin account on first boot.
func SeedAdmin(db *gorm.DB) error {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("Admin credentials not configured, skipping admin seed.")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("check for admin user: %w", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	adminUser := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := db.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	adminProfile := models.Profile{
		UserID:   adminUser.ID,
		FullName: adminUser.FullName,
	}
	if err := db.Create(&adminProfile).Error; err != nil {
		return fmt.Errorf("seed admin profile: %w", err)
	}

	log.Println("✅ Admin user seeded successfully")
	return nil
}

// SeedCountries loads a starter tax-rate table when the countries table
// is empty. Countries missing from the table fall back to a 0% rate.
func SeedCountries(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Country{}).Count(&count).Error; err != nil {
		return fmt.Errorf("check countries: %w", err)
	}
	if count > 0 {
		return nil
	}

	countries := []models.Country{
		{Name: "USA", TaxRate: decimal.NewFromInt(5)},
		{Name: "Argentina", TaxRate: decimal.NewFromInt(21)},
		{Name: "United Kingdom", TaxRate: decimal.NewFromInt(20)},
		{Name: "Spain", TaxRate: decimal.NewFromInt(21)},
		{Name: "Italy", TaxRate: decimal.NewFromInt(22)},
		{Name: "Kenya", TaxRate: decimal.NewFromInt(16)},
	}
	if err := db.Create(&countries).Error; err != nil {
		return fmt.Errorf("seed countries: %w", err)
	}

	log.Println("✅ Country tax rates seeded successfully")
	return nil
}
