package services

import (
	"fmt"
	"math"
	"strings"

	"backend/repository"
)

const (
	fallbackScore       = 50
	fallbackCategory    = "neutral"
	fallbackDescription = "No information about this ingredient in the database"
)

// MatchResult is one resolved ingredient name: either a persisted
// reference record, or a synthetic neutral fallback with a null id when
// the dataset has nothing for the name. Fallbacks are never written back.
type MatchResult struct {
	ID          *uint   `json:"id"`
	Name        string  `json:"name"`
	ENumber     *string `json:"e_number"`
	Score       int     `json:"score"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// ProductSummary aggregates the match results of one analyze request.
type ProductSummary struct {
	Ingredients []MatchResult `json:"ingredients"`
	TotalScore  int           `json:"total_score"`
	Count       int           `json:"count"`
}

type AnalyzerService struct {
	repo repository.IngredientRepository
}

func NewAnalyzerService(repo repository.IngredientRepository) *AnalyzerService {
	return &AnalyzerService{repo: repo}
}

// Match resolves one raw ingredient name against the reference dataset.
// A name with no match is not an error: it resolves to the fallback record.
func (s *AnalyzerService) Match(rawName string) (MatchResult, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return MatchResult{}, fmt.Errorf("%w: empty ingredient name", ErrValidation)
	}

	ing, err := s.repo.FindBestMatch(strings.ToLower(name))
	if err != nil {
		return MatchResult{}, fmt.Errorf("match %q: %w", name, err)
	}
	if ing == nil {
		return MatchResult{
			Name:        name,
			Score:       fallbackScore,
			Category:    fallbackCategory,
			Description: fallbackDescription,
		}, nil
	}

	id := ing.ID
	return MatchResult{
		ID:          &id,
		Name:        ing.Name,
		ENumber:     ing.ENumber,
		Score:       ing.Score,
		Category:    ing.Category,
		Description: ing.Description,
	}, nil
}

// Analyze resolves every name in input order and reduces the scores into a
// rounded mean. Rounding is half-up (math.Round on a non-negative mean),
// so TotalScore stays in [0,100] whenever every constituent score does.
func (s *AnalyzerService) Analyze(names []string) (*ProductSummary, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: ingredients list is required", ErrValidation)
	}

	results := make([]MatchResult, 0, len(names))
	sum := 0
	for _, n := range names {
		res, err := s.Match(n)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
		sum += res.Score
	}

	total := int(math.Round(float64(sum) / float64(len(names))))
	return &ProductSummary{
		Ingredients: results,
		TotalScore:  total,
		Count:       len(results),
	}, nil
}
