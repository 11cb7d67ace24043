package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/pmarsh41/my-agent/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

// POST /meals  { "user_id": 1, "analysis": {...}, "image_url": "...", "ate_at": "..." }
func (mc *MealController) LogMeal(c *gin.Context) {
	var body struct {
		UserID   uint                    `json:"user_id" binding:"required"`
		Analysis services.AnalysisResult `json:"analysis" binding:"required"`
		ImageURL string                  `json:"image_url"`
		AteAt    time.Time               `json:"ate_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.meals.LogAnalyzedMeal(body.UserID, body.Analysis, body.ImageURL, body.AteAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /meals?user_id=1
func (mc *MealController) ListMeals(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meals, err := mc.meals.ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GET /meals/:id?user_id=1
func (mc *MealController) GetMeal(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := mc.meals.GetMeal(userID, uint(mealID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func queryUserID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		return 0, errors.New("user_id query parameter is required")
	}
	return uint(id), nil
}
