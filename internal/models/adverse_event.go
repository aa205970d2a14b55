package models

import "time"

// VCOG-CTCAE v2 grading: 1 mild, 2 moderate, 3 severe, 4 life-threatening,
// 5 death related to the adverse event.
const (
	GradeMild            = 1
	GradeModerate        = 2
	GradeSevere          = 3
	GradeLifeThreatening = 4
	GradeDeath           = 5
)

func EventCategories() []string {
	return []string{
		"gastrointestinal",
		"hematologic",
		"constitutional",
		"dermatologic",
		"neurologic",
		"cardiac",
		"respiratory",
		"renal",
		"hepatic",
		"immunologic",
		"infection",
		"other",
	}
}

func EventTypes() []string {
	return []string{
		"vomiting",
		"diarrhea",
		"anorexia",
		"nausea",
		"constipation",
		"colitis",
		"neutropenia",
		"thrombocytopenia",
		"anemia",
		"leukopenia",
		"lethargy",
		"fever",
		"weight_loss",
		"alopecia",
		"dermatitis",
		"pruritus",
		"infection",
		"hemorrhage",
		"pain",
		"other",
	}
}

type VCOGCTCAEEvent struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
	Source    string    `gorm:"not null;default:home"`

	Category string `gorm:"not null"`
	Event    string `gorm:"not null"`
	Grade    int    `gorm:"not null"`

	// Treatment that may have caused the event, free text.
	Treatment    string
	Intervention string
	Resolved     bool `gorm:"not null;default:false"`
	ResolvedDate *time.Time

	Notes string
}

func (VCOGCTCAEEvent) TableName() string {
	return "vcogctcae_events"
}
