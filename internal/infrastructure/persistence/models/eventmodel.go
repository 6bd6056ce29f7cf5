package models

import (
	"time"

	"gorm.io/datatypes"
)

type EventModel struct {
	ID               uint   `gorm:"primaryKey"`
	OrganizerID      uint   `gorm:"index;not null"`
	CategoryID       *uint  `gorm:"index"`
	Title            string `gorm:"size:200;not null"`
	Slug             string `gorm:"size:100;not null;index"`
	Description      string `gorm:"type:text"`
	ShortDescription string `gorm:"size:300"`
	LocationName     string `gorm:"size:200"`
	Address          string `gorm:"size:500"`
	Latitude         *float64
	Longitude        *float64
	StartDate        time.Time `gorm:"not null;index"`
	EndDate          time.Time `gorm:"not null"`
	Timezone         string    `gorm:"size:64;not null"`
	CoverImageURL    string    `gorm:"size:512"`
	GalleryImages    datatypes.JSONSlice[string]
	Tags             datatypes.JSONSlice[string]
	TotalCapacity    int    `gorm:"not null"`
	MinOrder         int    `gorm:"not null"`
	MaxOrder         int    `gorm:"not null"`
	IsPublished      bool   `gorm:"not null;index"`
	ApprovalStatus   string `gorm:"size:20;not null;index"`
	ApprovalNotes    string `gorm:"size:1000"`
	ReviewedBy       *uint
	ReviewedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (EventModel) TableName() string {
	return "events"
}

type TicketTypeModel struct {
	ID            uint   `gorm:"primaryKey"`
	EventID       uint   `gorm:"index;not null"`
	Name          string `gorm:"size:100;not null"`
	Description   string `gorm:"size:500"`
	Price         int64  `gorm:"not null"`
	Currency      string `gorm:"size:3;not null"`
	TotalQuantity int    `gorm:"not null"`
	SoldQuantity  int    `gorm:"not null"`
	SaleStart     *time.Time
	SaleEnd       *time.Time
	IsVisible     bool `gorm:"not null"`
	MinPerOrder   int  `gorm:"not null"`
	MaxPerOrder   int  `gorm:"not null"`
	SortOrder     int  `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TicketTypeModel) TableName() string {
	return "ticket_types"
}
