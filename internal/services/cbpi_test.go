package services

import (
	"testing"

	"brunotrack/internal/models"
)

func TestScoreCBPI(t *testing.T) {
	t.Parallel()

	assessment := models.CBPIAssessment{
		WorstPain:   5,
		LeastPain:   2,
		AveragePain: 3,
		CurrentPain: 3,

		GeneralActivity: 4,
		EnjoymentOfLife: 3,
		AbilityToRise:   2,
		AbilityToWalk:   2,
		AbilityToRun:    4,
		AbilityToClimb:  4,
	}

	scores := ScoreCBPI(assessment)
	if scores.PainSeverity != 3.25 {
		t.Fatalf("expected pain severity 3.25, got %v", scores.PainSeverity)
	}
	if scores.PainInterference != 3.17 {
		t.Fatalf("expected pain interference 3.17, got %v", scores.PainInterference)
	}
}

func TestScoreCBPI_AllZeroItems(t *testing.T) {
	t.Parallel()

	scores := ScoreCBPI(models.CBPIAssessment{})
	if scores.PainSeverity != 0 {
		t.Fatalf("expected pain severity 0, got %v", scores.PainSeverity)
	}
	if scores.PainInterference != 0 {
		t.Fatalf("expected pain interference 0, got %v", scores.PainInterference)
	}
}
