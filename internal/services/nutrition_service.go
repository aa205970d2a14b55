package services

import (
	"errors"
	"strings"
	"time"

	"brunotrack/internal/models"
)

var (
	ErrProfileLoadFailed  = errors.New("load dog profile failed")
	ErrProfileSaveFailed  = errors.New("save dog profile failed")
	ErrMealSaveFailed     = errors.New("save meal failed")
	ErrSupplementDoseSave = errors.New("save supplement dose failed")
	ErrNutritionRollup    = errors.New("nutrition rollup failed")
	ErrFoodNotFound       = errors.New("food not found")
)

// Keto-style plan limits that do not scale with weight.
const (
	dailyCarbsLimitG = 25.0
	dailyEggsLimit   = 2
	weeklyTunaLimit  = 3
	defaultDogName   = "Bruno"
)

type NutritionStore interface {
	FindProfile(userID uint) (models.DogProfile, bool, error)
	UpsertProfile(profile *models.DogProfile) error
	ListFoods() ([]models.Food, error)
	FindFoodByID(foodID uint) (models.Food, bool, error)
	CreateFood(food *models.Food) error
	CreateMeal(meal *models.Meal) error
	ListMealsForDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Meal, error)
	CreateSupplementDose(dose *models.SupplementDose) error
	ListSupplementsForDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.SupplementDose, error)
	UpsertSummary(summary *models.DailyNutritionSummary) error
	FindSummary(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyNutritionSummary, bool, error)
	ListSummariesRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyNutritionSummary, error)
}

type NutritionService struct {
	store NutritionStore
}

func NewNutritionService(store NutritionStore) *NutritionService {
	return &NutritionService{store: store}
}

// FetchProfile returns the stored profile or a default-named one at the
// given fallback weight when none exists yet.
func (service *NutritionService) FetchProfile(userID uint, fallbackWeightKG float64) (models.DogProfile, error) {
	profile, found, err := service.store.FindProfile(userID)
	if err != nil {
		return models.DogProfile{}, ErrProfileLoadFailed
	}
	if !found {
		return models.DogProfile{UserID: userID, Name: defaultDogName, WeightKG: fallbackWeightKG}, nil
	}
	return profile, nil
}

func (service *NutritionService) UpdateWeight(userID uint, weightKG float64, targetWeightKG *float64) (models.DogProfile, error) {
	profile, err := service.FetchProfile(userID, weightKG)
	if err != nil {
		return models.DogProfile{}, err
	}
	profile.UserID = userID
	profile.WeightKG = weightKG
	if targetWeightKG != nil {
		profile.TargetWeightKG = targetWeightKG
	}
	if err := service.store.UpsertProfile(&profile); err != nil {
		return models.DogProfile{}, ErrProfileSaveFailed
	}
	return profile, nil
}

func (service *NutritionService) FetchFoods() ([]models.Food, error) {
	return service.store.ListFoods()
}

func (service *NutritionService) AddFood(food *models.Food) error {
	return service.store.CreateFood(food)
}

type MealItemInput struct {
	FoodID         *uint
	CustomFoodName string
	AmountG        int
	AmountDisplay  string
}

type MealInput struct {
	Date     time.Time
	MealType string
	Time     string
	Appetite string
	HandFed  bool
	Warmed   bool
	Notes    string
	Items    []MealItemInput
}

// LogMeal stores the meal with resolved food references and refreshes
// the day's nutrition summary.
func (service *NutritionService) LogMeal(userID uint, payload MealInput, location *time.Location) (models.Meal, error) {
	dayStart, _ := DayRange(payload.Date, location)
	meal := models.Meal{
		UserID:   userID,
		Date:     dayStart,
		MealType: payload.MealType,
		Time:     payload.Time,
		Appetite: payload.Appetite,
		HandFed:  payload.HandFed,
		Warmed:   payload.Warmed,
		Notes:    payload.Notes,
	}
	for _, item := range payload.Items {
		mealItem := models.MealItem{
			FoodID:         item.FoodID,
			CustomFoodName: item.CustomFoodName,
			AmountG:        item.AmountG,
			AmountDisplay:  item.AmountDisplay,
		}
		if item.FoodID != nil {
			food, found, err := service.store.FindFoodByID(*item.FoodID)
			if err != nil {
				return models.Meal{}, ErrMealSaveFailed
			}
			if !found {
				return models.Meal{}, ErrFoodNotFound
			}
			mealItem.Food = &food
		}
		meal.Items = append(meal.Items, mealItem)
	}
	if err := service.store.CreateMeal(&meal); err != nil {
		return models.Meal{}, ErrMealSaveFailed
	}
	if _, err := service.RefreshDailySummary(userID, dayStart, location); err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

type SupplementInput struct {
	Date           time.Time
	SupplementType string
	ProductName    string
	DoseAmount     string
	CalciumMG      *int
	EPAMG          *int
	DHAMG          *int
	Notes          string
}

func (service *NutritionService) LogSupplement(userID uint, payload SupplementInput, location *time.Location) (models.SupplementDose, error) {
	dayStart, _ := DayRange(payload.Date, location)
	dose := models.SupplementDose{
		UserID:         userID,
		Date:           dayStart,
		SupplementType: payload.SupplementType,
		ProductName:    payload.ProductName,
		DoseAmount:     payload.DoseAmount,
		CalciumMG:      payload.CalciumMG,
		EPAMG:          payload.EPAMG,
		DHAMG:          payload.DHAMG,
		Notes:          payload.Notes,
	}
	if err := service.store.CreateSupplementDose(&dose); err != nil {
		return models.SupplementDose{}, ErrSupplementDoseSave
	}
	if _, err := service.RefreshDailySummary(userID, dayStart, location); err != nil {
		return models.SupplementDose{}, err
	}
	return dose, nil
}

// RefreshDailySummary recomputes the day's rollup from its meals and
// supplement doses and upserts the (user, date) row.
func (service *NutritionService) RefreshDailySummary(userID uint, day time.Time, location *time.Location) (models.DailyNutritionSummary, error) {
	dayStart, dayEnd := DayRange(day, location)
	meals, err := service.store.ListMealsForDay(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyNutritionSummary{}, ErrNutritionRollup
	}
	supplements, err := service.store.ListSupplementsForDay(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyNutritionSummary{}, ErrNutritionRollup
	}

	summary := models.DailyNutritionSummary{
		UserID: userID,
		Date:   dayStart,
	}

	proteinG := 0.0
	fatG := 0.0
	carbsG := 0.0
	for _, meal := range meals {
		totals := TotalsForMeal(meal)
		summary.TotalFoodG += totals.FoodG
		proteinG += totals.ProteinG
		fatG += totals.FatG
		carbsG += totals.CarbsG
		summary.TotalCalciumMG += totals.CalciumMG
		summary.TotalOmega3MG += totals.Omega3MG
		summary.EggsCount += countItemsNamed(meal.Items, "egg")
	}
	summary.MealsCount = len(meals)
	summary.TotalProteinG = RoundTo(proteinG, 1)
	summary.TotalFatG = RoundTo(fatG, 1)
	summary.TotalCarbsG = RoundTo(carbsG, 1)

	for _, dose := range supplements {
		if dose.SupplementType == "multivitamin" {
			summary.MultivitaminGiven = true
		}
		if dose.CalciumMG != nil {
			summary.TotalCalciumMG += *dose.CalciumMG
		}
		summary.TotalOmega3MG += dose.Omega3TotalMG()
	}

	weekTuna, err := service.tunaServingsForWeek(userID, dayStart, location)
	if err != nil {
		return models.DailyNutritionSummary{}, ErrNutritionRollup
	}
	summary.TunaServings = weekTuna

	profile, found, err := service.store.FindProfile(userID)
	if err != nil {
		return models.DailyNutritionSummary{}, ErrNutritionRollup
	}

	summary.CarbsWarning = summary.TotalCarbsG > dailyCarbsLimitG
	summary.EggsWarning = summary.EggsCount > dailyEggsLimit
	summary.TunaWarning = weekTuna > weeklyTunaLimit
	if found {
		targets := TargetsForWeight(profile.WeightKG)
		summary.FoodLow = float64(summary.TotalFoodG) < targets.FoodMinG
		summary.CalciumLow = float64(summary.TotalCalciumMG) < targets.CalciumMinMG
		summary.Omega3Low = float64(summary.TotalOmega3MG) < targets.Omega3MinMG
	}

	if err := service.store.UpsertSummary(&summary); err != nil {
		return models.DailyNutritionSummary{}, ErrNutritionRollup
	}
	return summary, nil
}

func (service *NutritionService) FetchSummaryForDate(userID uint, day time.Time, location *time.Location) (models.DailyNutritionSummary, bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.store.FindSummary(userID, dayStart, dayEnd)
}

func (service *NutritionService) FetchSummariesForRange(userID uint, from time.Time, to time.Time, location *time.Location) ([]models.DailyNutritionSummary, error) {
	fromStart, _ := DayRange(from, location)
	_, toEnd := DayRange(to, location)
	return service.store.ListSummariesRange(userID, fromStart, toEnd)
}

func (service *NutritionService) FetchMealsForDate(userID uint, day time.Time, location *time.Location) ([]models.Meal, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.store.ListMealsForDay(userID, dayStart, dayEnd)
}

func (service *NutritionService) FetchSupplementsForDate(userID uint, day time.Time, location *time.Location) ([]models.SupplementDose, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.store.ListSupplementsForDay(userID, dayStart, dayEnd)
}

// tunaServingsForWeek counts tuna items over the trailing seven days
// ending on the given day.
func (service *NutritionService) tunaServingsForWeek(userID uint, dayStart time.Time, location *time.Location) (int, error) {
	weekStart := dayStart.AddDate(0, 0, -6)
	_, weekEnd := DayRange(dayStart, location)
	servings := 0
	for cursor := weekStart; cursor.Before(weekEnd); cursor = cursor.AddDate(0, 0, 1) {
		rangeStart, rangeEnd := DayRange(cursor, location)
		meals, err := service.store.ListMealsForDay(userID, rangeStart, rangeEnd)
		if err != nil {
			return 0, err
		}
		for _, meal := range meals {
			servings += countItemsNamed(meal.Items, "tuna")
		}
	}
	return servings, nil
}

func countItemsNamed(items []models.MealItem, needle string) int {
	count := 0
	for _, item := range items {
		name := item.CustomFoodName
		if item.Food != nil {
			name = item.Food.Name
		}
		if strings.Contains(strings.ToLower(name), needle) {
			count++
		}
	}
	return count
}
