package services

import (
	"testing"
	"time"

	"brunotrack/internal/models"
)

type stubNutritionStore struct {
	profile    *models.DogProfile
	foods      []models.Food
	meals      []models.Meal
	doses      []models.SupplementDose
	summaries  map[string]models.DailyNutritionSummary
	lastUpsert *models.DailyNutritionSummary
}

func newStubNutritionStore() *stubNutritionStore {
	return &stubNutritionStore{summaries: make(map[string]models.DailyNutritionSummary)}
}

func (stub *stubNutritionStore) FindProfile(userID uint) (models.DogProfile, bool, error) {
	if stub.profile == nil {
		return models.DogProfile{}, false, nil
	}
	return *stub.profile, true, nil
}

func (stub *stubNutritionStore) UpsertProfile(profile *models.DogProfile) error {
	stub.profile = profile
	return nil
}

func (stub *stubNutritionStore) ListFoods() ([]models.Food, error) {
	return stub.foods, nil
}

func (stub *stubNutritionStore) FindFoodByID(foodID uint) (models.Food, bool, error) {
	for _, food := range stub.foods {
		if food.ID == foodID {
			return food, true, nil
		}
	}
	return models.Food{}, false, nil
}

func (stub *stubNutritionStore) CreateFood(food *models.Food) error {
	food.ID = uint(len(stub.foods) + 1)
	stub.foods = append(stub.foods, *food)
	return nil
}

func (stub *stubNutritionStore) CreateMeal(meal *models.Meal) error {
	meal.ID = uint(len(stub.meals) + 1)
	stub.meals = append(stub.meals, *meal)
	return nil
}

func (stub *stubNutritionStore) ListMealsForDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Meal, error) {
	matched := make([]models.Meal, 0)
	for _, meal := range stub.meals {
		if meal.UserID == userID && !meal.Date.Before(dayStart) && meal.Date.Before(dayEnd) {
			matched = append(matched, meal)
		}
	}
	return matched, nil
}

func (stub *stubNutritionStore) CreateSupplementDose(dose *models.SupplementDose) error {
	dose.ID = uint(len(stub.doses) + 1)
	stub.doses = append(stub.doses, *dose)
	return nil
}

func (stub *stubNutritionStore) ListSupplementsForDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.SupplementDose, error) {
	matched := make([]models.SupplementDose, 0)
	for _, dose := range stub.doses {
		if dose.UserID == userID && !dose.Date.Before(dayStart) && dose.Date.Before(dayEnd) {
			matched = append(matched, dose)
		}
	}
	return matched, nil
}

func (stub *stubNutritionStore) UpsertSummary(summary *models.DailyNutritionSummary) error {
	stub.summaries[summary.Date.Format("2006-01-02")] = *summary
	stub.lastUpsert = summary
	return nil
}

func (stub *stubNutritionStore) FindSummary(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyNutritionSummary, bool, error) {
	summary, exists := stub.summaries[dayStart.Format("2006-01-02")]
	return summary, exists, nil
}

func (stub *stubNutritionStore) ListSummariesRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyNutritionSummary, error) {
	matched := make([]models.DailyNutritionSummary, 0)
	for _, summary := range stub.summaries {
		if !summary.Date.Before(fromStart) && summary.Date.Before(toEnd) {
			matched = append(matched, summary)
		}
	}
	return matched, nil
}

func TestNutritionService_RefreshDailySummary_RollsUpMealsAndSupplements(t *testing.T) {
	t.Parallel()

	store := newStubNutritionStore()
	store.profile = &models.DogProfile{UserID: 1, Name: "Bruno", WeightKG: 30}
	chicken := models.Food{ID: 1, Name: "Chicken breast", ProteinGPer100G: float64Ptr(31.0), FatGPer100G: float64Ptr(3.6), CarbsGPer100G: float64Ptr(0.0), CalciumMGPer100G: intPtr(15)}
	store.foods = []models.Food{chicken}

	day := mustParseDay(t, "2026-03-10")
	store.meals = []models.Meal{
		{UserID: 1, Date: day, MealType: models.MealBreakfast, Items: []models.MealItem{{Food: &chicken, AmountG: 200}}},
		{UserID: 1, Date: day, MealType: models.MealDinner, Items: []models.MealItem{{Food: &chicken, AmountG: 300}}},
	}
	store.doses = []models.SupplementDose{
		{UserID: 1, Date: day, SupplementType: "calcium", CalciumMG: intPtr(800)},
		{UserID: 1, Date: day, SupplementType: "fish_oil", EPAMG: intPtr(700), DHAMG: intPtr(500)},
		{UserID: 1, Date: day, SupplementType: "multivitamin"},
	}

	service := NewNutritionService(store)
	summary, err := service.RefreshDailySummary(1, day, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalFoodG != 500 {
		t.Fatalf("expected 500g fed, got %d", summary.TotalFoodG)
	}
	if summary.TotalProteinG != 155.0 {
		t.Fatalf("expected 155.0g protein, got %v", summary.TotalProteinG)
	}
	if summary.TotalCalciumMG != 30+45+800 {
		t.Fatalf("expected calcium %d, got %d", 30+45+800, summary.TotalCalciumMG)
	}
	if summary.TotalOmega3MG != 1200 {
		t.Fatalf("expected omega-3 1200, got %d", summary.TotalOmega3MG)
	}
	if !summary.MultivitaminGiven {
		t.Fatalf("expected multivitamin flag set")
	}
	if summary.MealsCount != 2 {
		t.Fatalf("expected 2 meals, got %d", summary.MealsCount)
	}

	// 30 kg targets: 750g food minimum, so 500g reads low.
	if !summary.FoodLow {
		t.Fatalf("expected food low below the 750g minimum")
	}
	// 875mg calcium and 1200mg omega-3 are both under the 1500mg minimums.
	if !summary.CalciumLow || !summary.Omega3Low {
		t.Fatalf("expected calcium and omega-3 low flags, got calcium=%v omega3=%v", summary.CalciumLow, summary.Omega3Low)
	}
}

func TestNutritionService_RefreshDailySummary_Warnings(t *testing.T) {
	t.Parallel()

	store := newStubNutritionStore()
	store.profile = &models.DogProfile{UserID: 1, Name: "Bruno", WeightKG: 30}
	rice := models.Food{ID: 1, Name: "White rice", CarbsGPer100G: float64Ptr(28.0)}
	egg := models.Food{ID: 2, Name: "Egg", ProteinGPer100G: float64Ptr(13.0)}
	store.foods = []models.Food{rice, egg}

	day := mustParseDay(t, "2026-03-10")
	store.meals = []models.Meal{
		{UserID: 1, Date: day, MealType: models.MealBreakfast, Items: []models.MealItem{
			{Food: &rice, AmountG: 100},
			{Food: &egg, AmountG: 50},
			{Food: &egg, AmountG: 50},
			{Food: &egg, AmountG: 50},
		}},
	}

	service := NewNutritionService(store)
	summary, err := service.RefreshDailySummary(1, day, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.CarbsWarning {
		t.Fatalf("expected carbs warning above 25g, got %vg without warning", summary.TotalCarbsG)
	}
	if summary.EggsCount != 3 {
		t.Fatalf("expected 3 eggs counted, got %d", summary.EggsCount)
	}
	if !summary.EggsWarning {
		t.Fatalf("expected eggs warning above 2 per day")
	}
	if !summary.FoodLow {
		t.Fatalf("expected food low below the 750g minimum")
	}
	if !summary.CalciumLow {
		t.Fatalf("expected calcium low below the 1500mg minimum")
	}
	if !summary.Omega3Low {
		t.Fatalf("expected omega-3 low below the 1500mg minimum")
	}
}

func TestNutritionService_RefreshDailySummary_TunaLimitIsWeekly(t *testing.T) {
	t.Parallel()

	store := newStubNutritionStore()
	tuna := models.Food{ID: 1, Name: "Canned tuna", ProteinGPer100G: float64Ptr(24.0)}
	store.foods = []models.Food{tuna}

	day := mustParseDay(t, "2026-03-10")
	for offset := 0; offset < 4; offset++ {
		store.meals = append(store.meals, models.Meal{
			UserID:   1,
			Date:     day.AddDate(0, 0, -offset),
			MealType: models.MealLunch,
			Items:    []models.MealItem{{Food: &tuna, AmountG: 80}},
		})
	}

	service := NewNutritionService(store)
	summary, err := service.RefreshDailySummary(1, day, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TunaServings != 4 {
		t.Fatalf("expected 4 tuna servings for the week, got %d", summary.TunaServings)
	}
	if !summary.TunaWarning {
		t.Fatalf("expected tuna warning above 3 servings per week")
	}
}

func TestNutritionService_UpdateWeight_CreatesProfile(t *testing.T) {
	t.Parallel()

	store := newStubNutritionStore()
	service := NewNutritionService(store)

	profile, err := service.UpdateWeight(1, 28.5, float64Ptr(31.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.WeightKG != 28.5 {
		t.Fatalf("expected weight 28.5, got %v", profile.WeightKG)
	}
	if profile.TargetWeightKG == nil || *profile.TargetWeightKG != 31.0 {
		t.Fatalf("expected target weight 31.0, got %v", profile.TargetWeightKG)
	}
	if store.profile == nil {
		t.Fatalf("expected profile to be persisted")
	}
}

func TestNutritionService_LogMeal_RejectsUnknownFood(t *testing.T) {
	t.Parallel()

	store := newStubNutritionStore()
	service := NewNutritionService(store)

	_, err := service.LogMeal(1, MealInput{
		Date:     mustParseDay(t, "2026-03-10"),
		MealType: models.MealDinner,
		Items:    []MealItemInput{{FoodID: uintPtr(99), AmountG: 100}},
	}, time.UTC)
	if err != ErrFoodNotFound {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}
	if len(store.meals) != 0 {
		t.Fatalf("expected no meal stored, got %d", len(store.meals))
	}
}
