package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	Svc *services.RatingService
}

func NewRatingController(svc *services.RatingService) *RatingController {
	return &RatingController{Svc: svc}
}

// GET /api/ingredients/rating?type=harmful|healthy|all&limit=10
func (h *RatingController) GetRating(c *gin.Context) {
	ratingType := c.DefaultQuery("type", "all")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
		return
	}

	ingredients, err := h.Svc.Rank(ratingType, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ingredients": ingredients,
		"type":        ratingType,
		"count":       len(ingredients),
	})
}
