package repository

import (
	"errors"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

// IngredientRepository is the query contract the scoring services depend
// on. Handlers are tested against an in-memory fake of this interface.
type IngredientRepository interface {
	FindBestMatch(term string) (*models.Ingredient, error)
	ListByCategory(category string, scoreAsc bool, limit int) ([]models.Ingredient, error)
}

type GormIngredientRepository struct {
	DB *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *GormIngredientRepository {
	return &GormIngredientRepository{DB: db}
}

// FindBestMatch returns the highest-scoring ingredient whose name or
// e-number contains term, case-insensitively. Equal scores resolve to the
// lowest id. Returns nil without error when nothing matches.
func (r *GormIngredientRepository) FindBestMatch(term string) (*models.Ingredient, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var ing models.Ingredient
	err := r.DB.
		Where("LOWER(name) LIKE ? OR (e_number IS NOT NULL AND LOWER(e_number) LIKE ?)", pattern, pattern).
		Order("score DESC").
		Order("id ASC").
		First(&ing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ing, nil
}

// ListByCategory returns up to limit ingredients ordered by score. An empty
// category means every category. Ties on score resolve to the lowest id.
func (r *GormIngredientRepository) ListByCategory(category string, scoreAsc bool, limit int) ([]models.Ingredient, error) {
	q := r.DB.Model(&models.Ingredient{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	order := "score DESC"
	if scoreAsc {
		order = "score ASC"
	}

	out := make([]models.Ingredient, 0, limit)
	err := q.Order(order).Order("id ASC").Limit(limit).Find(&out).Error
	return out, err
}
