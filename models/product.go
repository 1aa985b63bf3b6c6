package models

import "time"

// A scanned product. Score is supplied by the client at creation and
// stored as-is; it is never recomputed from the linked ingredients.
type Product struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Score       int          `gorm:"not null" json:"score"`
	ScanDate    time.Time    `gorm:"column:scan_date" json:"scanDate"`
	ImageURL    *string      `gorm:"column:image_url" json:"imageUrl"`
	Ingredients []Ingredient `gorm:"many2many:product_ingredients" json:"ingredients"`
}
