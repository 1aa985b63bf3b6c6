package controllers

import (
	"fmt"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// GET /health
func (h *HealthController) Health(c *gin.Context) {
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		respondError(c, fmt.Errorf("%w: %v", services.ErrUnavailable, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
