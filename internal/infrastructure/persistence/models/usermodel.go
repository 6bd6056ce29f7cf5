package models

import "time"

type UserModel struct {
	ID         uint   `gorm:"primaryKey"`
	ExternalID string `gorm:"uniqueIndex;size:191;not null"`
	Email      string `gorm:"size:255;not null;index"`
	FirstName  string `gorm:"size:100"`
	LastName   string `gorm:"size:100"`
	ImageURL   string `gorm:"size:512"`
	Username   string `gorm:"size:100"`
	Phone      string `gorm:"size:32"`
	Role       string `gorm:"size:20;not null;index"`
	Status     string `gorm:"size:20;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (UserModel) TableName() string {
	return "users"
}
