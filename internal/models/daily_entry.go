package models

import "time"

const (
	GoodDayYes   = "yes"
	GoodDayMixed = "mixed"
	GoodDayNo    = "no"
)

const (
	SourceHome   = "home"
	SourceClinic = "clinic"
)

// DailyEntry holds one day of wellness ratings. Rating fields are 1-5 and
// nullable: an unrated field stays out of every score.
type DailyEntry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_entry_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_entry_user_date"`
	CreatedAt time.Time
	UpdatedAt time.Time

	GoodDay string `gorm:"not null;default:''"`

	// Mood
	TailBodyLanguage    *int
	InterestPeople      *int
	InterestEnvironment *int
	EnjoymentFavorites  *int
	OverallSpark        *int

	// Appetite
	Appetite        *int
	FoodEnjoyment   *int
	NauseaSigns     *int
	WeightCondition *int

	Breakfast bool `gorm:"not null;default:false"`
	Lunch     bool `gorm:"not null;default:false"`
	Dinner    bool `gorm:"not null;default:false"`
	Treats    bool `gorm:"not null;default:false"`

	// Mobility
	EnergyLevel     *int
	WillingnessMove *int
	WalkingComfort  *int
	RestingComfort  *int

	// Comfort
	BreathingComfort *int
	PainSigns        *int
	SleepQuality     *int
	ResponseTouch    *int

	GoodNotes  string
	HardNotes  string
	OtherNotes string
}

// MoodFields returns the happiness-score subset in instrument order.
func (entry DailyEntry) MoodFields() []*int {
	return []*int{
		entry.TailBodyLanguage,
		entry.InterestPeople,
		entry.InterestEnvironment,
		entry.EnjoymentFavorites,
		entry.OverallSpark,
	}
}

// RatingFields returns all 17 rated fields in instrument order.
func (entry DailyEntry) RatingFields() []*int {
	return []*int{
		entry.TailBodyLanguage,
		entry.InterestPeople,
		entry.InterestEnvironment,
		entry.EnjoymentFavorites,
		entry.OverallSpark,
		entry.Appetite,
		entry.FoodEnjoyment,
		entry.NauseaSigns,
		entry.WeightCondition,
		entry.EnergyLevel,
		entry.WillingnessMove,
		entry.WalkingComfort,
		entry.RestingComfort,
		entry.BreathingComfort,
		entry.PainSigns,
		entry.SleepQuality,
		entry.ResponseTouch,
	}
}
