package models

import "time"

func TreatmentTypes() []string {
	return []string{"chemo", "radiation", "surgery", "immunotherapy", "palliative", "other"}
}

func TreatmentProtocols() []string {
	return []string{"chop", "cop", "single_agent", "madison_wisconsin", "other"}
}

type TreatmentSession struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
	Source    string    `gorm:"not null;default:clinic"`

	TreatmentType string `gorm:"not null"`
	Protocol      string
	Agent         string
	Dose          string

	CycleNumber        *int
	PreTreatmentWeight *float64

	Notes string
}
