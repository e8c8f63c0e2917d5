package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		log.Fatalf("enabling foreign keys failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Project{},
		&model.TaskItem{},
		&model.User{},
		&model.RefreshToken{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
