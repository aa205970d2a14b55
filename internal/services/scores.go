package services

import "brunotrack/internal/models"

// MeanOfRated averages the rated fields of a wellness entry, skipping
// unrated ones. Returns nil when nothing was rated; an all-empty entry
// has no score, not a zero score.
func MeanOfRated(fields []*int) *float64 {
	sum := 0
	count := 0
	for _, field := range fields {
		if field == nil {
			continue
		}
		sum += *field
		count++
	}
	if count == 0 {
		return nil
	}
	mean := RoundTo(float64(sum)/float64(count), 1)
	return &mean
}

// HappinessScore averages the five mood fields.
func HappinessScore(entry models.DailyEntry) *float64 {
	return MeanOfRated(entry.MoodFields())
}

// OverallScore averages all seventeen rated fields.
func OverallScore(entry models.DailyEntry) *float64 {
	return MeanOfRated(entry.RatingFields())
}
