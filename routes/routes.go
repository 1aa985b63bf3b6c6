package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())

	ingredientRepo := repository.NewIngredientRepository(db)
	productRepo := repository.NewProductRepository(db)

	analyze := controllers.NewAnalyzeController(services.NewAnalyzerService(ingredientRepo))
	rating := controllers.NewRatingController(services.NewRatingService(ingredientRepo))
	product := controllers.NewProductController(services.NewProductService(productRepo))
	health := controllers.NewHealthController(db)

	r.GET("/health", health.Health)

	api := r.Group("/api")
	{
		ingredients := api.Group("/ingredients")
		{
			ingredients.POST("/analyze", analyze.Analyze)
			ingredients.GET("/rating", rating.GetRating)
		}

		products := api.Group("/products")
		{
			products.GET("", product.ListProducts)
			products.GET("/:id", product.GetProduct)
			products.POST("", product.CreateProduct)
		}
	}

	return r
}
