package model

// Project groups related tasks. Deleting a project cascades to its tasks.
type Project struct {
	ID    uint       `gorm:"primaryKey" json:"id"`
	Name  string     `gorm:"size:200;not null" json:"name"`
	Tasks []TaskItem `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}
