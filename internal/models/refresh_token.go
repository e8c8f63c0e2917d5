package model

import "time"

// RefreshToken is a long-lived opaque credential. Usable iff
// !IsRevoked && ExpiresUtc > now. Revocation is terminal; rows are
// never deleted.
type RefreshToken struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Token      string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresUtc time.Time `gorm:"not null" json:"expiresUtc"`
	IsRevoked  bool      `gorm:"not null;default:false" json:"isRevoked"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
}
