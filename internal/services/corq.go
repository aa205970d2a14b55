package services

import "brunotrack/internal/models"

// CORQScores holds the four factor sums and the total. The pain factor
// is reverse-scored so all four run "higher is better"; the total ranges
// 16 to 80.
type CORQScores struct {
	Vitality      int `json:"vitality_score"`
	Companionship int `json:"companionship_score"`
	Pain          int `json:"pain_score"`
	Mobility      int `json:"mobility_score"`
	Total         int `json:"total_score"`
}

func sumOfItems(items []int) int {
	sum := 0
	for _, item := range items {
		sum += item
	}
	return sum
}

func sumReversed(items []int) int {
	sum := 0
	for _, item := range items {
		sum += 6 - item
	}
	return sum
}

func ScoreCORQ(assessment models.CORQAssessment) CORQScores {
	scores := CORQScores{
		Vitality:      sumOfItems(assessment.VitalityItems()),
		Companionship: sumOfItems(assessment.CompanionshipItems()),
		Pain:          sumReversed(assessment.PainItems()),
		Mobility:      sumOfItems(assessment.MobilityItems()),
	}
	scores.Total = scores.Vitality + scores.Companionship + scores.Pain + scores.Mobility
	return scores
}
