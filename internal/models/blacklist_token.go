package models

import "time"

// BlacklistToken stores JWTs revoked by logout. Tokens stay listed until
// their natural expiry.
type BlacklistToken struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Token     string    `gorm:"type:text;not null" json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
