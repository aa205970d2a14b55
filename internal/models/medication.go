package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	FrequencyOnce     = "once"
	FrequencyTwice    = "twice"
	FrequencyThree    = "three"
	FrequencyAsNeeded = "asNeeded"
)

func MedicationFrequencies() []string {
	return []string{FrequencyOnce, FrequencyTwice, FrequencyThree, FrequencyAsNeeded}
}

type Medication struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Dosage    string `gorm:"not null"`
	Frequency string `gorm:"not null;default:once"`
	Notes     string
	Active    bool `gorm:"not null;default:true"`
	// ScheduleTimes is a JSON array of "HH:MM" strings driving reminders.
	ScheduleTimes datatypes.JSON
	CreatedAt     time.Time

	Doses []MedicationDose `gorm:"constraint:OnDelete:CASCADE"`
}

type MedicationDose struct {
	ID           uint      `gorm:"primaryKey"`
	MedicationID uint      `gorm:"not null;index"`
	UserID       uint      `gorm:"not null;index"`
	GivenAt      time.Time `gorm:"not null;index"`
	Notes        string

	Medication *Medication
}
