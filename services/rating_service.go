package services

import (
	"fmt"

	"backend/models"
	"backend/repository"
)

type RatingService struct {
	repo repository.IngredientRepository
}

func NewRatingService(repo repository.IngredientRepository) *RatingService {
	return &RatingService{repo: repo}
}

// Rank returns up to limit reference records for one rating type:
// "harmful" — worst first (score ascending), "healthy" — best first
// (score descending), anything else — every category, score descending.
func (s *RatingService) Rank(ratingType string, limit int) ([]models.Ingredient, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrValidation)
	}

	switch ratingType {
	case "harmful":
		return s.repo.ListByCategory("harmful", true, limit)
	case "healthy":
		return s.repo.ListByCategory("healthy", false, limit)
	default:
		return s.repo.ListByCategory("", false, limit)
	}
}
