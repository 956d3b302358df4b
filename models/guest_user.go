package models

import "time"

// GuestUser is a short-lived identity for shoppers who have not signed in.
// Its ID keys the session cart held in the key-value store.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
