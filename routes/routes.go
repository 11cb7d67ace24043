package routes

import (
	"net/http"

	"github.com/pmarsh41/my-agent/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	ac *controllers.AnalysisController,
	fc *controllers.FoodController,
	mc *controllers.MealController,
) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	food := r.Group("/food")
	{
		food.GET("/catalog", fc.GetCatalog)
		food.GET("/search", fc.SearchFood)
	}

	meals := r.Group("/meals")
	{
		meals.POST("/analyze", ac.AnalyzeMeal)
		meals.POST("/analyze/reselect", ac.ReselectPortion)
		meals.POST("", mc.LogMeal)
		meals.GET("", mc.ListMeals)
		meals.GET("/:id", mc.GetMeal)
	}

	return r
}
