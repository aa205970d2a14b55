package services

import "brunotrack/internal/models"

// CBPIScores holds the two instrument sub-scores. They are reported
// independently; the instrument defines no combined number.
type CBPIScores struct {
	PainSeverity     float64 `json:"pain_severity_score"`
	PainInterference float64 `json:"pain_interference_score"`
}

func meanOfItems(items []int, decimals int) float64 {
	sum := 0
	for _, item := range items {
		sum += item
	}
	return RoundTo(float64(sum)/float64(len(items)), decimals)
}

func ScoreCBPI(assessment models.CBPIAssessment) CBPIScores {
	return CBPIScores{
		PainSeverity:     meanOfItems(assessment.SeverityItems(), 2),
		PainInterference: meanOfItems(assessment.InterferenceItems(), 2),
	}
}
