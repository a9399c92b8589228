package models

import "time"

type ImportJob struct {
	ID             string  `gorm:"type:uuid;primaryKey"`
	ManagerID      int64   `gorm:"index;not null"`
	SourcePath     string  `gorm:"type:text;not null"`
	Status         string  `gorm:"type:text;not null"`
	TotalLines     int     `gorm:"not null;default:0"`
	ProcessedCount int     `gorm:"not null;default:0"`
	ErrorCount     int     `gorm:"not null;default:0"`
	Attempts       int     `gorm:"not null;default:0"`
	MaxAttempts    int     `gorm:"not null;default:3"`
	ErrorMessage   *string `gorm:"type:text"`
	HeartbeatAt    *time.Time
	LeaseExpiresAt *time.Time
	StartedAt      *time.Time
	FinishedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ImportJob) TableName() string {
	return "import_jobs"
}
