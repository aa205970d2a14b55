package services

// NutritionTargets are the daily intake bands derived from body weight.
// All scalings are linear and evaluated on demand from the current
// weight, never cached.
type NutritionTargets struct {
	FoodMinG     float64 `json:"daily_food_min_g"`
	FoodMaxG     float64 `json:"daily_food_max_g"`
	CalciumMinMG float64 `json:"daily_calcium_min_mg"`
	CalciumMaxMG float64 `json:"daily_calcium_max_mg"`
	Omega3MinMG  float64 `json:"daily_omega3_min_mg"`
	Omega3MaxMG  float64 `json:"daily_omega3_max_mg"`
}

// TargetsForWeight scales the bands: food 2.5-3.0% of body weight per
// day, calcium 50-60 mg/kg, omega-3 (EPA+DHA) 50-100 mg/kg.
func TargetsForWeight(weightKG float64) NutritionTargets {
	return NutritionTargets{
		FoodMinG:     weightKG * 1000 * 0.025,
		FoodMaxG:     weightKG * 1000 * 0.030,
		CalciumMinMG: weightKG * 50,
		CalciumMaxMG: weightKG * 60,
		Omega3MinMG:  weightKG * 50,
		Omega3MaxMG:  weightKG * 100,
	}
}
