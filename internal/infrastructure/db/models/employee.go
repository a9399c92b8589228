package models

import "time"

type Employee struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	CPF       string `gorm:"size:11;not null;uniqueIndex"`
	City      string `gorm:"size:100;not null"`
	State     string `gorm:"size:2;not null"`
	ManagerID int64  `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}
