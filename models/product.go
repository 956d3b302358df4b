package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"` // unit sale price, never negative
	Stock       int     `json:"stock"`
	Image       string  `json:"image"` // public URL or storage reference
	Categories  []Category `gorm:"many2many:product_categories;" json:"categories"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// CategoryNames flattens the loaded category associations into plain
// tags, the shape the recommender scores against.
func (p Product) CategoryNames() []string {
	names := make([]string, 0, len(p.Categories))
	for _, cat := range p.Categories {
		names = append(names, cat.Name)
	}
	return names
}
