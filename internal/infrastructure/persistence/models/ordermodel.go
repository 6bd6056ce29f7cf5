package models

import "time"

type OrderModel struct {
	ID               uint       `gorm:"primaryKey"`
	UserID           uint       `gorm:"not null;index:idx_orders_user_event_status,priority:1"`
	EventID          uint       `gorm:"not null;index:idx_orders_user_event_status,priority:2"`
	Status           string     `gorm:"size:20;not null;index:idx_orders_user_event_status,priority:3;index:idx_orders_status_expires,priority:1"`
	TotalAmount      int64      `gorm:"not null"`
	Currency         string     `gorm:"size:3;not null"`
	PaymentProvider  string     `gorm:"size:20;not null"`
	PaymentReference string     `gorm:"size:128"`
	ExpiresAt        *time.Time `gorm:"index:idx_orders_status_expires,priority:2"`
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Items            []OrderItemModel `gorm:"foreignKey:OrderID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID           uint  `gorm:"primaryKey"`
	OrderID      uint  `gorm:"index;not null"`
	TicketTypeID uint  `gorm:"index;not null"`
	Quantity     int   `gorm:"not null"`
	UnitPrice    int64 `gorm:"not null"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
