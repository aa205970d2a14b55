package services

import "testing"

func TestTargetsForWeight(t *testing.T) {
	t.Parallel()

	targets := TargetsForWeight(30)
	if targets.FoodMinG != 750.0 {
		t.Fatalf("expected food min 750, got %v", targets.FoodMinG)
	}
	if targets.FoodMaxG != 900.0 {
		t.Fatalf("expected food max 900, got %v", targets.FoodMaxG)
	}
	if targets.CalciumMinMG != 1500 {
		t.Fatalf("expected calcium min 1500, got %v", targets.CalciumMinMG)
	}
	if targets.CalciumMaxMG != 1800 {
		t.Fatalf("expected calcium max 1800, got %v", targets.CalciumMaxMG)
	}
	if targets.Omega3MinMG != 1500 {
		t.Fatalf("expected omega-3 min 1500, got %v", targets.Omega3MinMG)
	}
	if targets.Omega3MaxMG != 3000 {
		t.Fatalf("expected omega-3 max 3000, got %v", targets.Omega3MaxMG)
	}
}

func TestTargetsForWeight_ScalesLinearly(t *testing.T) {
	t.Parallel()

	single := TargetsForWeight(10)
	double := TargetsForWeight(20)
	if double.FoodMinG != single.FoodMinG*2 {
		t.Fatalf("expected food min to double, got %v vs %v", double.FoodMinG, single.FoodMinG)
	}
	if double.Omega3MaxMG != single.Omega3MaxMG*2 {
		t.Fatalf("expected omega-3 max to double, got %v vs %v", double.Omega3MaxMG, single.Omega3MaxMG)
	}
}
