package models

// A reference entry for one ingredient or additive. Score is 0..100,
// higher is healthier. Category is assigned by the dataset curators,
// never derived from the score here.
type Ingredient struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null;index" json:"name"`
	ENumber     *string `gorm:"column:e_number;type:varchar(16);index" json:"e_number"`
	Score       int     `gorm:"not null" json:"score"`
	Category    string  `gorm:"type:varchar(16);not null" json:"category"` // "harmful"|"neutral"|"healthy"
	Description string  `json:"description"`
}
