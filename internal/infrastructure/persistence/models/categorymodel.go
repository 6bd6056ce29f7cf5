package models

type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"size:500"`
	Icon        string `gorm:"size:50"`
	Color       string `gorm:"size:20"`
	SortOrder   int    `gorm:"not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
