package models

import (
	"fmt"
	"time"
)

func DonorLanguages() []string {
	return []string{"en", "es", "other"}
}

func DonorContactMethods() []string {
	return []string{"email", "whatsapp", "facebook", "sms", "phone", "other"}
}

// Donor is a fundraiser CRM row, unrelated to the tracker domain but
// bundled in the same project.
type Donor struct {
	ID       uint   `gorm:"primaryKey"`
	FullName string `gorm:"not null"`
	City     string
	Country  string `gorm:"not null"`
	Language string `gorm:"not null;default:en"`

	Email            string
	Phone            string
	PreferredContact string `gorm:"not null;default:email"`

	IncomeScale int `gorm:"not null;default:3"`

	DonationAmount float64 `gorm:"not null;default:0"`
	DonationDate   *time.Time
	HasShared      bool `gorm:"not null;default:false"`
	ShareDate      *time.Time

	LastContacted *time.Time
	Notes         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (donor Donor) HasDonated() bool {
	return donor.DonationAmount > 0
}

// ContactInfo summarizes the best way to reach the donor.
func (donor Donor) ContactInfo() string {
	switch {
	case donor.PreferredContact == "whatsapp" && donor.Phone != "":
		return fmt.Sprintf("WhatsApp: %s", donor.Phone)
	case donor.PreferredContact == "email" && donor.Email != "":
		return fmt.Sprintf("Email: %s", donor.Email)
	case donor.Phone != "":
		return fmt.Sprintf("Phone: %s", donor.Phone)
	case donor.Email != "":
		return fmt.Sprintf("Email: %s", donor.Email)
	}
	return "No contact info"
}
