package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Svc *services.ProductService
}

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{Svc: svc}
}

// GET /api/products?search=cola&limit=20
func (h *ProductController) ListProducts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
			return
		}
		limit = n
	}

	products, err := h.Svc.List(c.Query("search"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GET /api/products/:id
func (h *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	p, err := h.Svc.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/products
// {"name": "...", "score": 53, "ingredient_ids": [1, 2], "image_url": "..."}
func (h *ProductController) CreateProduct(c *gin.Context) {
	var body struct {
		Name          string  `json:"name"`
		Score         *int    `json:"score"`
		IngredientIDs []uint  `json:"ingredient_ids"`
		ImageURL      *string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	score := 50
	if body.Score != nil {
		score = *body.Score
	}

	p, err := h.Svc.Create(body.Name, score, body.ImageURL, body.IngredientIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":    p.ID,
		"name":  p.Name,
		"score": p.Score,
	})
}
