package services

import (
	"testing"

	"brunotrack/internal/models"
)

func TestScoreCORQ(t *testing.T) {
	t.Parallel()

	assessment := models.CORQAssessment{
		EnergyLevel:            4,
		Playfulness:            3,
		InterestInSurroundings: 4,
		Appetite:               5,

		SeeksAttention:    5,
		EnjoysInteraction: 5,
		GreetsFamily:      4,
		TailWagging:       5,

		ShowsPain:     2,
		VocalizesPain: 1,
		AvoidsTouch:   2,
		PantsRestless: 1,

		WalksNormally: 4,
		RisesEasily:   3,
		ClimbsStairs:  3,
		Jumps:         2,
	}

	scores := ScoreCORQ(assessment)
	if scores.Vitality != 16 {
		t.Fatalf("expected vitality 16, got %d", scores.Vitality)
	}
	if scores.Companionship != 19 {
		t.Fatalf("expected companionship 19, got %d", scores.Companionship)
	}
	// Pain is reverse scored: (6-2)+(6-1)+(6-2)+(6-1) = 18.
	if scores.Pain != 18 {
		t.Fatalf("expected pain 18, got %d", scores.Pain)
	}
	if scores.Mobility != 12 {
		t.Fatalf("expected mobility 12, got %d", scores.Mobility)
	}
	if scores.Total != 16+19+18+12 {
		t.Fatalf("expected total %d, got %d", 16+19+18+12, scores.Total)
	}
}

func TestScoreCORQ_TotalRange(t *testing.T) {
	t.Parallel()

	worst := models.CORQAssessment{
		EnergyLevel: 1, Playfulness: 1, InterestInSurroundings: 1, Appetite: 1,
		SeeksAttention: 1, EnjoysInteraction: 1, GreetsFamily: 1, TailWagging: 1,
		ShowsPain: 5, VocalizesPain: 5, AvoidsTouch: 5, PantsRestless: 5,
		WalksNormally: 1, RisesEasily: 1, ClimbsStairs: 1, Jumps: 1,
	}
	if got := ScoreCORQ(worst).Total; got != 16 {
		t.Fatalf("expected floor total 16, got %d", got)
	}

	best := models.CORQAssessment{
		EnergyLevel: 5, Playfulness: 5, InterestInSurroundings: 5, Appetite: 5,
		SeeksAttention: 5, EnjoysInteraction: 5, GreetsFamily: 5, TailWagging: 5,
		ShowsPain: 1, VocalizesPain: 1, AvoidsTouch: 1, PantsRestless: 1,
		WalksNormally: 5, RisesEasily: 5, ClimbsStairs: 5, Jumps: 5,
	}
	if got := ScoreCORQ(best).Total; got != 80 {
		t.Fatalf("expected ceiling total 80, got %d", got)
	}
}
