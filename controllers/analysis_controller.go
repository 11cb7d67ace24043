package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pmarsh41/my-agent/services"
	"github.com/pmarsh41/my-agent/utils"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	analysis *services.AnalysisService
}

func NewAnalysisController(analysis *services.AnalysisService) *AnalysisController {
	return &AnalysisController{analysis: analysis}
}

// POST /meals/analyze  { "user_id": 1, "image_base64": "data:image/jpeg;base64,..." }
func (ac *AnalysisController) AnalyzeMeal(c *gin.Context) {
	var req struct {
		UserID      uint   `json:"user_id"`
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	mimeType, payload, err := utils.ParseImageDataURI(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ac.analysis.Analyze(c.Request.Context(), payload, mimeType)
	if err != nil {
		if errors.Is(err, services.ErrIdentificationUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The photo is stored now so the confirm call can reference it; a failed
	// upload degrades to an empty URL rather than failing the analysis.
	imageURL, err := utils.UploadMealImage(c.Request.Context(), payload, mimeType, req.UserID)
	if err != nil {
		log.Printf("meal image upload failed: %v", err)
		imageURL = ""
	}

	c.JSON(http.StatusOK, gin.H{"analysis": result, "image_url": imageURL})
}

// POST /meals/analyze/reselect  { "analysis": {...}, "food_id": "chicken_breast", "portion_name": "large" }
func (ac *AnalysisController) ReselectPortion(c *gin.Context) {
	var req struct {
		Analysis    services.AnalysisResult `json:"analysis" binding:"required"`
		FoodID      string                  `json:"food_id" binding:"required"`
		PortionName string                  `json:"portion_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	updated, err := ac.analysis.ReselectPortion(req.Analysis, req.FoodID, req.PortionName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownFoodID):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUnknownPortionName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
