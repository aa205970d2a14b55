package services

import (
	"testing"

	"brunotrack/internal/models"
)

func TestTotalsForMeal_SingleItem(t *testing.T) {
	t.Parallel()

	chicken := models.Food{Name: "Chicken breast", ProteinGPer100G: float64Ptr(31.0), FatGPer100G: float64Ptr(3.6)}
	meal := models.Meal{
		Items: []models.MealItem{
			{Food: &chicken, AmountG: 100},
		},
	}

	totals := TotalsForMeal(meal)
	if totals.ProteinG != 31.0 {
		t.Fatalf("expected protein 31.0, got %v", totals.ProteinG)
	}
	if totals.FatG != 3.6 {
		t.Fatalf("expected fat 3.6, got %v", totals.FatG)
	}
	if totals.FoodG != 100 {
		t.Fatalf("expected food 100g, got %d", totals.FoodG)
	}
}

func TestTotalsForMeal_ScalesByAmount(t *testing.T) {
	t.Parallel()

	beef := models.Food{
		Name:             "Ground beef",
		ProteinGPer100G:  float64Ptr(26.0),
		FatGPer100G:      float64Ptr(15.0),
		CarbsGPer100G:    float64Ptr(0.0),
		CalciumMGPer100G: intPtr(18),
	}
	meal := models.Meal{
		Items: []models.MealItem{
			{Food: &beef, AmountG: 150},
		},
	}

	totals := TotalsForMeal(meal)
	if totals.ProteinG != 39.0 {
		t.Fatalf("expected protein 39.0, got %v", totals.ProteinG)
	}
	if totals.FatG != 22.5 {
		t.Fatalf("expected fat 22.5, got %v", totals.FatG)
	}
	if totals.CalciumMG != 27 {
		t.Fatalf("expected calcium 27, got %d", totals.CalciumMG)
	}
}

func TestTotalsForMeal_SkipsUnmatchedFoods(t *testing.T) {
	t.Parallel()

	sardine := models.Food{Name: "Sardines", ProteinGPer100G: float64Ptr(25.0), EPAMGPer100G: intPtr(473), DHAMGPer100G: intPtr(509)}
	meal := models.Meal{
		Items: []models.MealItem{
			{Food: &sardine, AmountG: 50},
			{CustomFoodName: "mystery broth", AmountG: 30},
		},
	}

	totals := TotalsForMeal(meal)
	if totals.ProteinG != 12.5 {
		t.Fatalf("expected protein 12.5, got %v", totals.ProteinG)
	}
	// Unmatched items still count toward grams fed.
	if totals.FoodG != 80 {
		t.Fatalf("expected food 80g, got %d", totals.FoodG)
	}
	if totals.Omega3MG != 236+254 {
		t.Fatalf("expected omega-3 %d, got %d", 236+254, totals.Omega3MG)
	}
}

func TestTotalsForMeal_EmptyMeal(t *testing.T) {
	t.Parallel()

	totals := TotalsForMeal(models.Meal{})
	if totals.FoodG != 0 || totals.ProteinG != 0 || totals.FatG != 0 || totals.CarbsG != 0 {
		t.Fatalf("expected zero totals for empty meal, got %+v", totals)
	}
}
