package models

import "time"

// DogProfile is the per-user weight record all nutrition targets scale
// from. One row per user.
type DogProfile struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"not null;uniqueIndex"`
	Name           string    `gorm:"not null;default:Bruno"`
	WeightKG       float64   `gorm:"column:weight_kg;not null"`
	TargetWeightKG *float64  `gorm:"column:target_weight_kg"`
	UpdatedAt      time.Time
}

const (
	FoodStatusApproved = "approved"
	FoodStatusLimited  = "limited"
	FoodStatusAvoid    = "avoid"
	FoodStatusBlocked  = "blocked"
)

func FoodCategories() []string {
	return []string{"protein", "fat", "vegetable", "carb", "supplement", "commercial", "other"}
}

type Food struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Category string `gorm:"not null"`
	Status   string `gorm:"not null;default:approved"`

	// Per 100g
	CaloriesPer100G *int     `gorm:"column:calories_per_100g"`
	ProteinGPer100G *float64 `gorm:"column:protein_g_per_100g"`
	FatGPer100G     *float64 `gorm:"column:fat_g_per_100g"`
	CarbsGPer100G   *float64 `gorm:"column:carbs_g_per_100g"`

	EPAMGPer100G     *int `gorm:"column:epa_mg_per_100g"`
	DHAMGPer100G     *int `gorm:"column:dha_mg_per_100g"`
	CalciumMGPer100G *int `gorm:"column:calcium_mg_per_100g"`

	MaxPerDay  string
	MaxPerWeek *int

	Notes   string
	Warning string
}

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

func MealAppetites() []string {
	return []string{"excellent", "good", "fair", "poor", "refused"}
}

type Meal struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Date      time.Time `gorm:"type:date;not null;index"`
	MealType  string    `gorm:"not null"`
	Time      string
	CreatedAt time.Time

	Appetite string
	HandFed  bool `gorm:"not null;default:false"`
	Warmed   bool `gorm:"not null;default:false"`

	Notes string

	Items []MealItem `gorm:"constraint:OnDelete:CASCADE"`
}

type MealItem struct {
	ID             uint  `gorm:"primaryKey"`
	MealID         uint  `gorm:"not null;index"`
	FoodID         *uint `gorm:"index"`
	CustomFoodName string
	AmountG        int `gorm:"column:amount_g;not null"`
	AmountDisplay  string

	Food *Food `gorm:"constraint:OnDelete:SET NULL"`
}

func SupplementTypes() []string {
	return []string{"calcium", "fish_oil", "multivitamin", "vitamin_e", "vitamin_b", "probiotic", "other"}
}

type SupplementDose struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"not null;index"`
	Date           time.Time `gorm:"type:date;not null;index"`
	SupplementType string    `gorm:"not null"`
	CreatedAt      time.Time

	ProductName string
	DoseAmount  string

	CalciumMG *int `gorm:"column:calcium_mg"`
	EPAMG     *int `gorm:"column:epa_mg"`
	DHAMG     *int `gorm:"column:dha_mg"`

	Notes string
}

// Omega3TotalMG is EPA+DHA, treating absent values as zero.
func (dose SupplementDose) Omega3TotalMG() int {
	total := 0
	if dose.EPAMG != nil {
		total += *dose.EPAMG
	}
	if dose.DHAMG != nil {
		total += *dose.DHAMG
	}
	return total
}

// DailyNutritionSummary is the per-day rollup of meals and supplements
// against the profile-derived targets. One row per user and date.
type DailyNutritionSummary struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_nutrition_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_nutrition_user_date"`
	CreatedAt time.Time
	UpdatedAt time.Time

	TotalFoodG    int     `gorm:"column:total_food_g;not null;default:0"`
	TotalProteinG float64 `gorm:"column:total_protein_g;not null;default:0"`
	TotalFatG     float64 `gorm:"column:total_fat_g;not null;default:0"`
	TotalCarbsG   float64 `gorm:"column:total_carbs_g;not null;default:0"`

	TotalCalciumMG    int  `gorm:"column:total_calcium_mg;not null;default:0"`
	TotalOmega3MG     int  `gorm:"column:total_omega3_mg;not null;default:0"`
	MultivitaminGiven bool `gorm:"not null;default:false"`

	MealsCount   int `gorm:"not null;default:0"`
	EggsCount    int `gorm:"not null;default:0"`
	TunaServings int `gorm:"not null;default:0"`

	CarbsWarning bool `gorm:"not null;default:false"`
	CalciumLow   bool `gorm:"not null;default:false"`
	Omega3Low    bool `gorm:"not null;default:false"`
	FoodLow      bool `gorm:"not null;default:false"`
	EggsWarning  bool `gorm:"not null;default:false"`
	TunaWarning  bool `gorm:"not null;default:false"`

	Notes string
}
