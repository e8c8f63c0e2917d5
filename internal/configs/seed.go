package config

import (
	"log"
	"time"

	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/internal/models"
)

// Seed inserts predictable dev data. Idempotent: does nothing when any
// project already exists.
func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Project{}).Count(&count).Error; err != nil {
		log.Printf("seed skipped, count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	website := model.Project{Name: "Website Revamp"}
	mobile := model.Project{Name: "Mobile App"}
	if err := db.Create(&website).Error; err != nil {
		log.Printf("seed failed: %v", err)
		return
	}
	if err := db.Create(&mobile).Error; err != nil {
		log.Printf("seed failed: %v", err)
		return
	}

	desc := func(s string) *string { return &s }
	now := time.Now().UTC()
	tasks := []model.TaskItem{
		{Title: "Design landing page", Description: desc("Hero section and pricing"), CreatedUtc: now, ProjectID: website.ID},
		{Title: "Set up CI", Description: desc("Lint and test on every push"), IsDone: true, CreatedUtc: now, ProjectID: website.ID},
		{Title: "Sketch onboarding flow", CreatedUtc: now, ProjectID: mobile.ID},
	}
	if err := db.Create(&tasks).Error; err != nil {
		log.Printf("seed failed: %v", err)
		return
	}

	log.Printf("seeded %d projects and %d tasks", 2, len(tasks))
}
