package services

import (
	"fmt"
	"time"

	"github.com/pmarsh41/my-agent/config"
	"github.com/pmarsh41/my-agent/models"
)

// MealService appends finalized analysis results to the user's meal history.
// It only consumes the pipeline's output; it never feeds back into it.
type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

// LogAnalyzedMeal persists one confirmed result: a meal row with the total
// and image reference, plus a snapshot row per portion suggestion.
func (s *MealService) LogAnalyzedMeal(userID uint, result AnalysisResult, imageURL string, ateAt time.Time) (*models.Meal, error) {
	if ateAt.IsZero() {
		ateAt = time.Now()
	}
	meal := &models.Meal{
		UserID:            userID,
		AteAt:             ateAt,
		ImageURL:          imageURL,
		TotalProteinGrams: result.TotalProteinGrams,
		ConfidenceLevel:   string(result.ConfidenceLevel),
	}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	for _, sg := range result.PortionSuggestions {
		mf := &models.MealFood{
			MealID:       meal.ID,
			FoodID:       sg.FoodID,
			FoodLabel:    sg.FoodName,
			PortionName:  sg.SelectedPortionName,
			Grams:        sg.Grams,
			ProteinGrams: sg.ProteinGrams,
			Confidence:   sg.Confidence,
			Preparation:  sg.Preparation,
		}
		if err := config.DB.Create(mf).Error; err != nil {
			return nil, fmt.Errorf("failed to create meal food: %w", err)
		}
	}

	var populated models.Meal
	if err := config.DB.Preload("Foods").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Preload("Foods").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Preload("Foods").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}
