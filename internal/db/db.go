package db

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/servicehub/marketplace-api/internal/config"
	"github.com/servicehub/marketplace-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.ServiceCategory{},
		&models.ServiceProvider{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedCategories(db)

	return db
}

// seedCategories popula o conjunto fechado de categorias na primeira
// subida. Depois disso o diretório é somente leitura.
func seedCategories(db *gorm.DB) {
	var count int64
	db.Model(&models.ServiceCategory{}).Count(&count)
	if count > 0 {
		return
	}

	names := []string{
		"Plumbing",
		"Electrical",
		"Cleaning",
		"Carpentry",
		"Painting",
		"Appliance Repair",
		"Pest Control",
		"Gardening",
	}

	for _, name := range names {
		db.Create(&models.ServiceCategory{
			ID:   uuid.New(),
			Name: name,
		})
	}
}
