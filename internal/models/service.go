package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Price is a display string ("R$ 40,00"), not an amount used in math.
	Price       string `gorm:"size:50" json:"price"`
	DurationMin int    `json:"duration"`
	IsFeatured  bool   `gorm:"default:false" json:"is_featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
