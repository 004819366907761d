package model

import "time"

// GuestDevice binds a client device id to the stable user id minted for it.
// Registration is idempotent per device id.
type GuestDevice struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	DeviceID  string    `json:"device_id" gorm:"uniqueIndex;not null"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex;not null"`
	LastSeen  time.Time `json:"last_seen"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
