package models

import "time"

const (
	ProviderVet    = "vet"
	ProviderClinic = "clinic"
	ProviderLab    = "lab"
	ProviderOther  = "other"
)

type Provider struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Kind      string `gorm:"not null;default:vet"`
	Phone     string
	Email     string
	Address   string
	Notes     string
	CreatedAt time.Time
}

const (
	TimelineScheduled = "scheduled"
	TimelineCompleted = "completed"
	TimelineCancelled = "cancelled"
)

func TimelineKinds() []string {
	return []string{"appointment", "treatment", "symptom", "note", "milestone"}
}

// TimelineEntry is one journal event. Status is derived from the date on
// every save unless the entry was cancelled; cancelled sticks.
type TimelineEntry struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	Date        time.Time `gorm:"type:date;not null;index"`
	Title       string    `gorm:"not null"`
	Kind        string    `gorm:"not null;default:note"`
	Status      string    `gorm:"not null;default:scheduled"`
	ProviderID  *uint     `gorm:"index"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Provider    *Provider            `gorm:"constraint:OnDelete:SET NULL"`
	Attachments []TimelineAttachment `gorm:"constraint:OnDelete:CASCADE"`
}

type TimelineAttachment struct {
	ID              uint   `gorm:"primaryKey"`
	TimelineEntryID uint   `gorm:"not null;index"`
	FileName        string `gorm:"not null"`
	StoredName      string `gorm:"not null;uniqueIndex"`
	FileSize        int64
	UploadedAt      time.Time
}
