package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal is one confirmed analysis appended to the user's history. Each row
// snapshots the totals at confirmation time plus the original photo URL.
type Meal struct {
	gorm.Model
	UserID            uint       `json:"user_id"` // FK → users.id
	AteAt             time.Time  `json:"ate_at"`
	ImageURL          string     `json:"image_url"`
	TotalProteinGrams float64    `json:"total_protein_grams"`
	ConfidenceLevel   string     `json:"confidence_level"`
	Foods             []MealFood `json:"foods"`
}

// MealFood stores the per-item snapshot of a portion suggestion as it was
// confirmed, so history survives catalog changes.
type MealFood struct {
	gorm.Model
	MealID       uint    `json:"meal_id"`
	FoodID       string  `gorm:"type:varchar(255);not null" json:"food_id"`
	FoodLabel    string  `json:"food_label"`
	PortionName  string  `json:"portion_name"`
	Grams        float64 `json:"grams"`
	ProteinGrams float64 `json:"protein_grams"`
	Confidence   int     `json:"confidence"`
	Preparation  string  `json:"preparation"`
}
