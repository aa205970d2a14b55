package services

import "brunotrack/internal/models"

// ApplyAbnormalFlag sets is_abnormal when both reference bounds are
// present and the value falls strictly outside [low, high]. With either
// bound missing the flag is left as set, so manual overrides survive.
func ApplyAbnormalFlag(value *models.LabValue) {
	if value.ReferenceLow == nil || value.ReferenceHigh == nil {
		return
	}
	value.IsAbnormal = value.Value < *value.ReferenceLow || value.Value > *value.ReferenceHigh
}
