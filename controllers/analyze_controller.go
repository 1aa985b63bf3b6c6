package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AnalyzeController struct {
	Svc *services.AnalyzerService
}

func NewAnalyzeController(svc *services.AnalyzerService) *AnalyzeController {
	return &AnalyzeController{Svc: svc}
}

// POST /api/ingredients/analyze  {"ingredients": ["Aspartame", ...]}
func (h *AnalyzeController) Analyze(c *gin.Context) {
	var body struct {
		Ingredients []string `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if len(body.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients list is required"})
		return
	}

	summary, err := h.Svc.Analyze(body.Ingredients)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
