package model

import "time"

// TaskItem is a single tracked task. CreatedUtc is assigned server-side at
// creation and never changed by updates.
type TaskItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description *string    `gorm:"size:2000" json:"description,omitempty"`
	IsDone      bool       `gorm:"not null;default:false" json:"isDone"`
	CreatedUtc  time.Time  `gorm:"not null;index" json:"createdUtc"`
	DueUtc      *time.Time `json:"dueUtc,omitempty"`
	ProjectID   uint       `gorm:"not null;index" json:"projectId"`
}
