package model

// User is an account. The unique index on UserName is the authoritative
// guard against duplicate registrations.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserName     string `gorm:"size:64;uniqueIndex;not null" json:"userName"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"size:32;not null;default:'User'" json:"role"`
}
