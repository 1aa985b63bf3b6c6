package repository

import (
	"errors"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	List(search string, limit int) ([]models.Product, error)
	Get(id uint) (*models.Product, error)
	GetIngredients(productID uint) ([]models.Ingredient, error)
	Create(p *models.Product, ingredientIDs []uint) error
}

type GormProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{DB: db}
}

// List returns recently scanned products, newest first, optionally
// filtered by a case-insensitive name substring.
func (r *GormProductRepository) List(search string, limit int) ([]models.Product, error) {
	q := r.DB.Preload("Ingredients")
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	out := make([]models.Product, 0, limit)
	err := q.Order("scan_date DESC").Limit(limit).Find(&out).Error
	return out, err
}

// Get fetches the bare product row; linked ingredients are attached
// separately via GetIngredients. Returns nil without error when absent.
func (r *GormProductRepository) Get(id uint) (*models.Product, error) {
	var p models.Product
	err := r.DB.First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) GetIngredients(productID uint) ([]models.Ingredient, error) {
	out := make([]models.Ingredient, 0)
	err := r.DB.
		Joins("JOIN product_ingredients pi ON pi.ingredient_id = ingredients.id").
		Where("pi.product_id = ?", productID).
		Find(&out).Error
	return out, err
}

// Create inserts the product row and every ingredient link inside one
// transaction. A failure on any link rolls back the product row too, so a
// partial product is never visible. An unknown ingredient id fails the
// whole call with gorm.ErrRecordNotFound.
func (r *GormProductRepository) Create(p *models.Product, ingredientIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for _, id := range ingredientIDs {
			var ing models.Ingredient
			if err := tx.First(&ing, id).Error; err != nil {
				return err
			}
			if err := tx.Model(p).Association("Ingredients").Append(&ing); err != nil {
				return err
			}
		}
		return nil
	})
}
