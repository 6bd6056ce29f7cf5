package models

import "time"

type TicketModel struct {
	ID           uint   `gorm:"primaryKey"`
	OrderID      uint   `gorm:"index;not null"`
	EventID      uint   `gorm:"index;not null"`
	TicketTypeID uint   `gorm:"index;not null"`
	UserID       uint   `gorm:"index;not null"`
	TicketNumber string `gorm:"uniqueIndex;size:32;not null"`
	QRSecret     string `gorm:"column:qr_secret;uniqueIndex;size:64;not null"`
	Status       string `gorm:"size:20;not null"`
	CheckedInAt  *time.Time
	CheckedInBy  *uint
	CreatedAt    time.Time `gorm:"index"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type WaitlistEntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	EventID   uint   `gorm:"not null;uniqueIndex:uk_waitlist_event_user,priority:1"`
	UserID    uint   `gorm:"not null;uniqueIndex:uk_waitlist_event_user,priority:2"`
	Status    string `gorm:"size:20;not null"`
	CreatedAt time.Time
}

func (WaitlistEntryModel) TableName() string {
	return "waitlist_entries"
}

// All returns every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&CategoryModel{},
		&EventModel{},
		&TicketTypeModel{},
		&OrderModel{},
		&OrderItemModel{},
		&TicketModel{},
		&WaitlistEntryModel{},
	}
}
