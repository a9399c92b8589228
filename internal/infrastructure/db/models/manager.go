package models

import "time"

type Manager struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Manager) TableName() string {
	return "managers"
}

// APIToken stores the SHA-256 hash of an issued bearer token.
type APIToken struct {
	ID        int64  `gorm:"primaryKey"`
	ManagerID int64  `gorm:"index;not null"`
	TokenHash string `gorm:"size:64;not null;uniqueIndex"`
	CreatedAt time.Time
}

func (APIToken) TableName() string {
	return "api_tokens"
}
