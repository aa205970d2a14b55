package db

import (
	"time"

	"brunotrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NutritionRepository struct {
	database *gorm.DB
}

func NewNutritionRepository(database *gorm.DB) *NutritionRepository {
	return &NutritionRepository{database: database}
}

func (repo *NutritionRepository) FindProfile(userID uint) (models.DogProfile, bool, error) {
	profile := models.DogProfile{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.DogProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DogProfile{}, false, nil
	}
	return profile, true, nil
}

// UpsertProfile keeps one profile row per user.
func (repo *NutritionRepository) UpsertProfile(profile *models.DogProfile) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "weight_kg", "target_weight_kg", "updated_at"}),
	}).Create(profile).Error
}

func (repo *NutritionRepository) ListFoods() ([]models.Food, error) {
	foods := make([]models.Food, 0)
	if err := repo.database.Order("category ASC, name ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (repo *NutritionRepository) FindFoodByID(foodID uint) (models.Food, bool, error) {
	food := models.Food{}
	result := repo.database.Limit(1).Find(&food, foodID)
	if result.Error != nil {
		return models.Food{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Food{}, false, nil
	}
	return food, true, nil
}

func (repo *NutritionRepository) CreateFood(food *models.Food) error {
	return repo.database.Create(food).Error
}

func (repo *NutritionRepository) CreateMeal(meal *models.Meal) error {
	return repo.database.Create(meal).Error
}

func (repo *NutritionRepository) ListMealsForDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Preload("Items").
		Preload("Items.Food").
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date ASC, time ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *NutritionRepository) CreateSupplementDose(dose *models.SupplementDose) error {
	return repo.database.Create(dose).Error
}

func (repo *NutritionRepository) ListSupplementsForDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.SupplementDose, error) {
	doses := make([]models.SupplementDose, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("supplement_type ASC, id ASC").
		Find(&doses).Error; err != nil {
		return nil, err
	}
	return doses, nil
}

func (repo *NutritionRepository) CountMealsWithFoodBetween(userID uint, foodID uint, fromStart time.Time, toEnd time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.MealItem{}).
		Joins("JOIN meals ON meals.id = meal_items.meal_id").
		Where("meals.user_id = ? AND meals.date >= ? AND meals.date < ? AND meal_items.food_id = ?", userID, fromStart, toEnd, foodID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var nutritionSummaryUpsertColumns = []string{
	"total_food_g",
	"total_protein_g",
	"total_fat_g",
	"total_carbs_g",
	"total_calcium_mg",
	"total_omega3_mg",
	"multivitamin_given",
	"meals_count",
	"eggs_count",
	"tuna_servings",
	"carbs_warning",
	"calcium_low",
	"omega3_low",
	"food_low",
	"eggs_warning",
	"tuna_warning",
	"updated_at",
}

func (repo *NutritionRepository) UpsertSummary(summary *models.DailyNutritionSummary) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(nutritionSummaryUpsertColumns),
	}).Create(summary).Error
}

func (repo *NutritionRepository) FindSummary(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyNutritionSummary, bool, error) {
	summary := models.DailyNutritionSummary{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&summary)
	if result.Error != nil {
		return models.DailyNutritionSummary{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyNutritionSummary{}, false, nil
	}
	return summary, true, nil
}

func (repo *NutritionRepository) ListSummariesRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyNutritionSummary, error) {
	summaries := make([]models.DailyNutritionSummary, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC").
		Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}
