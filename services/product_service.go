package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/models"
	"backend/repository"

	"gorm.io/gorm"
)

const (
	defaultProductLimit = 20
	defaultProductName  = "Unknown product"
)

type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List returns recently scanned products with their linked ingredients
// embedded, optionally filtered by a name substring.
func (s *ProductService) List(search string, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultProductLimit
	}
	products, err := s.repo.List(search, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Get returns one product with its linked ingredients attached.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	p, err := s.repo.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}

	ings, err := s.repo.GetIngredients(p.ID)
	if err != nil {
		return nil, fmt.Errorf("get product %d ingredients: %w", id, err)
	}
	p.Ingredients = ings
	return p, nil
}

// Create stores the product and links every listed ingredient as one
// all-or-nothing unit. The supplied score is stored verbatim; it is not
// recomputed from the linked ingredients.
func (s *ProductService) Create(name string, score int, imageURL *string, ingredientIDs []uint) (*models.Product, error) {
	if strings.TrimSpace(name) == "" {
		name = defaultProductName
	}

	p := &models.Product{
		Name:     name,
		Score:    score,
		ScanDate: time.Now(),
		ImageURL: imageURL,
	}
	if err := s.repo.Create(p, ingredientIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown ingredient id", ErrValidation)
		}
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}
