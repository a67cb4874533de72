package model

import "time"

// User represents a registered author in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
