package services

import "brunotrack/internal/models"

// MealTotals are the summed nutrients of one meal's line items.
type MealTotals struct {
	FoodG     int     `json:"total_food_g"`
	ProteinG  float64 `json:"total_protein_g"`
	FatG      float64 `json:"total_fat_g"`
	CarbsG    float64 `json:"total_carbs_g"`
	CalciumMG int     `json:"total_calcium_mg"`
	Omega3MG  int     `json:"total_omega3_mg"`
}

// TotalsForMeal sums nutrient_per_100g x grams / 100 over the items.
// Items without a matched food still count toward grams but contribute
// no nutrients. Macros are rounded to one decimal.
func TotalsForMeal(meal models.Meal) MealTotals {
	totals := MealTotals{}
	for _, item := range meal.Items {
		totals.FoodG += item.AmountG
		if item.Food == nil {
			continue
		}
		portion := float64(item.AmountG) / 100
		if item.Food.ProteinGPer100G != nil {
			totals.ProteinG += *item.Food.ProteinGPer100G * portion
		}
		if item.Food.FatGPer100G != nil {
			totals.FatG += *item.Food.FatGPer100G * portion
		}
		if item.Food.CarbsGPer100G != nil {
			totals.CarbsG += *item.Food.CarbsGPer100G * portion
		}
		if item.Food.CalciumMGPer100G != nil {
			totals.CalciumMG += int(float64(*item.Food.CalciumMGPer100G) * portion)
		}
		if item.Food.EPAMGPer100G != nil {
			totals.Omega3MG += int(float64(*item.Food.EPAMGPer100G) * portion)
		}
		if item.Food.DHAMGPer100G != nil {
			totals.Omega3MG += int(float64(*item.Food.DHAMGPer100G) * portion)
		}
	}
	totals.ProteinG = RoundTo(totals.ProteinG, 1)
	totals.FatG = RoundTo(totals.FatG, 1)
	totals.CarbsG = RoundTo(totals.CarbsG, 1)
	return totals
}
