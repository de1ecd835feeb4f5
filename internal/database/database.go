package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studentdb/internal/config"
	"studentdb/internal/model"
)

// InitDB opens the store and materializes the students schema. Without a
// DB_HOST it uses a transient in-memory SQLite database that is discarded at
// process exit.
func InitDB() *gorm.DB {
	var dialector gorm.Dialector
	if config.DBHost != "" {
		dsn := "host=" + config.DBHost + " user=" + config.DBUser + " password=" + config.DBPassword + " dbname=" + config.DBName + " port=" + config.DBPort + " sslmode=disable"
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(config.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to the database:", err)
	}

	// Auto-migrate the Student table
	if err := db.AutoMigrate(&model.Student{}); err != nil {
		log.Fatal("Failed to auto-migrate the database:", err)
	}

	return db
}
