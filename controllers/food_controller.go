package controllers

import (
	"net/http"

	"github.com/pmarsh41/my-agent/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	catalog *services.Catalog
	matcher *services.MatcherService
}

func NewFoodController(catalog *services.Catalog, matcher *services.MatcherService) *FoodController {
	return &FoodController{catalog: catalog, matcher: matcher}
}

// GET /food/catalog
func (fc *FoodController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, fc.catalog.All())
}

// GET /food/search?q=grilled+chicken
func (fc *FoodController) SearchFood(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, fc.matcher.MatchName(q))
}
