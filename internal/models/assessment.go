package models

import "time"

// CBPIAssessment is one Canine Brief Pain Inventory questionnaire.
// Items are 0-10 and mandatory; scores are derived, never stored.
type CBPIAssessment struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
	Source    string    `gorm:"not null;default:home"`

	// Severity items
	WorstPain   int `gorm:"not null"`
	LeastPain   int `gorm:"not null"`
	AveragePain int `gorm:"not null"`
	CurrentPain int `gorm:"not null"`

	// Interference items
	GeneralActivity int `gorm:"not null"`
	EnjoymentOfLife int `gorm:"not null"`
	AbilityToRise   int `gorm:"not null"`
	AbilityToWalk   int `gorm:"not null"`
	AbilityToRun    int `gorm:"not null"`
	AbilityToClimb  int `gorm:"not null"`

	// Global QoL, 1-5 categorical; not part of either score.
	OverallQualityOfLife int `gorm:"not null"`

	Notes string
}

func (assessment CBPIAssessment) SeverityItems() []int {
	return []int{assessment.WorstPain, assessment.LeastPain, assessment.AveragePain, assessment.CurrentPain}
}

func (assessment CBPIAssessment) InterferenceItems() []int {
	return []int{
		assessment.GeneralActivity,
		assessment.EnjoymentOfLife,
		assessment.AbilityToRise,
		assessment.AbilityToWalk,
		assessment.AbilityToRun,
		assessment.AbilityToClimb,
	}
}

// CORQAssessment is one Canine Owner-Reported Quality of Life
// questionnaire: four 4-item factors scored 1-5 per item.
type CORQAssessment struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
	Source    string    `gorm:"not null;default:home"`

	// Vitality
	EnergyLevel            int `gorm:"not null"`
	Playfulness            int `gorm:"not null"`
	InterestInSurroundings int `gorm:"not null"`
	Appetite               int `gorm:"not null"`

	// Companionship
	SeeksAttention    int `gorm:"not null"`
	EnjoysInteraction int `gorm:"not null"`
	GreetsFamily      int `gorm:"not null"`
	TailWagging       int `gorm:"not null"`

	// Pain (reverse scored)
	ShowsPain     int `gorm:"not null"`
	VocalizesPain int `gorm:"not null"`
	AvoidsTouch   int `gorm:"not null"`
	PantsRestless int `gorm:"not null"`

	// Mobility
	WalksNormally int `gorm:"not null"`
	RisesEasily   int `gorm:"not null"`
	ClimbsStairs  int `gorm:"not null"`
	Jumps         int `gorm:"not null"`

	// 0-100 visual analog scale, reported alongside the factor scores.
	GlobalQOL int `gorm:"column:global_qol;not null"`

	Notes string
}

func (assessment CORQAssessment) VitalityItems() []int {
	return []int{assessment.EnergyLevel, assessment.Playfulness, assessment.InterestInSurroundings, assessment.Appetite}
}

func (assessment CORQAssessment) CompanionshipItems() []int {
	return []int{assessment.SeeksAttention, assessment.EnjoysInteraction, assessment.GreetsFamily, assessment.TailWagging}
}

func (assessment CORQAssessment) PainItems() []int {
	return []int{assessment.ShowsPain, assessment.VocalizesPain, assessment.AvoidsTouch, assessment.PantsRestless}
}

func (assessment CORQAssessment) MobilityItems() []int {
	return []int{assessment.WalksNormally, assessment.RisesEasily, assessment.ClimbsStairs, assessment.Jumps}
}
