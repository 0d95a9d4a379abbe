package models

import "time"

// OTPCode is a one-time numeric code proving control of an email address.
// Rows are deleted on successful verification; expired rows are simply
// ignored by the expiry predicate, there is no background sweep.
type OTPCode struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"index"`
	Code      string    `json:"-" gorm:"size:6"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
