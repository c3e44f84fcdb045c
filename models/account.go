package models

import "time"

// Account is an admin login. There is no signup route; the bootstrap seeds
// one account and nothing in the API ever creates or deletes another.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash []byte    `gorm:"not null" json:"-"`
}
