package services

import (
	"sort"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

// fakeIngredientRepo reproduces the repository's query semantics over an
// in-memory slice: case-insensitive substring match on name or e_number,
// score ordering, lowest id as the tie-break key.
type fakeIngredientRepo struct {
	rows []models.Ingredient
}

func (f *fakeIngredientRepo) FindBestMatch(term string) (*models.Ingredient, error) {
	term = strings.ToLower(term)
	var best *models.Ingredient
	for i := range f.rows {
		r := &f.rows[i]
		matched := strings.Contains(strings.ToLower(r.Name), term)
		if !matched && r.ENumber != nil {
			matched = strings.Contains(strings.ToLower(*r.ENumber), term)
		}
		if !matched {
			continue
		}
		if best == nil || r.Score > best.Score || (r.Score == best.Score && r.ID < best.ID) {
			best = r
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (f *fakeIngredientRepo) ListByCategory(category string, scoreAsc bool, limit int) ([]models.Ingredient, error) {
	out := make([]models.Ingredient, 0, limit)
	for _, r := range f.rows {
		if category == "" || r.Category == category {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			if scoreAsc {
				return out[i].Score < out[j].Score
			}
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeProductRepo keeps products and their links in memory. Create is
// all-or-nothing like the real repository: an unknown ingredient id fails
// the whole call and stores nothing.
type fakeProductRepo struct {
	ingredients map[uint]models.Ingredient
	products    map[uint]models.Product
	links       map[uint][]models.Ingredient
	nextID      uint
}

func newFakeProductRepo(ingredients ...models.Ingredient) *fakeProductRepo {
	f := &fakeProductRepo{
		ingredients: make(map[uint]models.Ingredient),
		products:    make(map[uint]models.Product),
		links:       make(map[uint][]models.Ingredient),
	}
	for _, ing := range ingredients {
		f.ingredients[ing.ID] = ing
	}
	return f
}

func (f *fakeProductRepo) List(search string, limit int) ([]models.Product, error) {
	out := make([]models.Product, 0, limit)
	for _, p := range f.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		p.Ingredients = f.links[p.ID]
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScanDate.After(out[j].ScanDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProductRepo) Get(id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) GetIngredients(productID uint) ([]models.Ingredient, error) {
	ings := f.links[productID]
	if ings == nil {
		ings = []models.Ingredient{}
	}
	return ings, nil
}

func (f *fakeProductRepo) Create(p *models.Product, ingredientIDs []uint) error {
	linked := make([]models.Ingredient, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		ing, ok := f.ingredients[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		linked = append(linked, ing)
	}
	f.nextID++
	p.ID = f.nextID
	f.products[p.ID] = *p
	f.links[p.ID] = linked
	return nil
}

func strPtr(s string) *string { return &s }
