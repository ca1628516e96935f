package database

import (
	"fmt"
	"log"

	"github.com/shopkart/admin-api/internal/config"
	"github.com/shopkart/admin-api/internal/domain/entity"
	"github.com/shopkart/admin-api/pkg/utils"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Order{},
		&entity.Customer{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the bootstrap admin credential and demo records.
// Each table is seeded only when it is empty, so restarts never duplicate
// rows or overwrite changed data.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	if err := seedAdminUser(db); err != nil {
		return err
	}
	seedOrders(db)
	seedCustomers(db)

	log.Println("Default data seeding completed")
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&entity.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminEmail := viper.GetString("ADMIN_EMAIL")

	hashedPassword, err := utils.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.User{
		Username: adminUsername,
		Email:    adminEmail,
		Password: hashedPassword,
		Roles:    "ROLE_ADMIN",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Bootstrap admin user created: %s", adminUsername)
	return nil
}

func seedOrders(db *gorm.DB) {
	var orderCount int64
	if err := db.Model(&entity.Order{}).Count(&orderCount).Error; err != nil || orderCount > 0 {
		return
	}

	orders := []entity.Order{
		{OrderID: "ORD-001", Customer: "Alice Johnson", Location: "New York", Amount: "₹ 1,200", Status: "Shipped", Date: "2023-10-25"},
		{OrderID: "ORD-002", Customer: "Bob Smith", Location: "London", Amount: "₹ 850", Status: "Processing", Date: "2023-10-26"},
		{OrderID: "ORD-003", Customer: "Charlie Brown", Location: "Paris", Amount: "₹ 2,100", Status: "Delivered", Date: "2023-10-24"},
		{OrderID: "ORD-004", Customer: "Diana Prince", Location: "Themyscira", Amount: "₹ 5,000", Status: "Pending", Date: "2023-10-27"},
		{OrderID: "ORD-005", Customer: "Evan Wright", Location: "Berlin", Amount: "₹ 300", Status: "Delivered", Date: "2023-10-23"},
	}
	if err := db.Create(&orders).Error; err != nil {
		log.Printf("Warning: failed to seed orders: %v", err)
	}
}

func seedCustomers(db *gorm.DB) {
	var customerCount int64
	if err := db.Model(&entity.Customer{}).Count(&customerCount).Error; err != nil || customerCount > 0 {
		return
	}

	customers := []entity.Customer{
		{Name: "Alice Johnson", Email: "alice@example.com", Phone: "123-456-7890", Location: "New York, USA", Orders: 5, Status: "Active"},
		{Name: "Bob Smith", Email: "bob@example.com", Phone: "987-654-3210", Location: "London, UK", Orders: 2, Status: "Inactive"},
		{Name: "Charlie Brown", Email: "charlie@example.com", Phone: "456-789-0123", Location: "Paris, France", Orders: 8, Status: "Active"},
		{Name: "Diana Prince", Email: "diana@dc.com", Phone: "111-222-3333", Location: "Themyscira", Orders: 12, Status: "Active"},
		{Name: "Evan Wright", Email: "evan@example.com", Phone: "555-666-7777", Location: "Berlin, Germany", Orders: 1, Status: "Pending"},
	}
	if err := db.Create(&customers).Error; err != nil {
		log.Printf("Warning: failed to seed customers: %v", err)
	}
}
