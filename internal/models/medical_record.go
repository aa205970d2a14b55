package models

import "time"

func RecordTypes() []string {
	return []string{"bloodwork", "chemistry", "cytology", "histopath", "imaging", "urinalysis", "other"}
}

type MedicalRecord struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	Date       time.Time `gorm:"type:date;not null"`
	UploadedAt time.Time

	RecordType string `gorm:"not null"`
	Title      string
	// FileName is the original upload name; StoredName is the random name
	// on disk under the upload directory.
	FileName   string `gorm:"not null"`
	StoredName string `gorm:"not null;uniqueIndex"`
	FileType   string

	Source       string `gorm:"not null;default:clinic"`
	ClinicName   string
	Veterinarian string

	AIParsed        bool       `gorm:"column:ai_parsed;not null;default:false"`
	AIExtractedText string     `gorm:"column:ai_extracted_text"`
	AIParsedAt      *time.Time `gorm:"column:ai_parsed_at"`

	Notes string

	LabValues []LabValue `gorm:"constraint:OnDelete:CASCADE"`
}

func LabTestNames() []string {
	return []string{
		"wbc", "rbc", "hgb", "hct", "plt",
		"neutrophils", "lymphocytes", "monocytes", "eosinophils", "basophils",
		"bun", "creatinine", "glucose", "alt", "alp", "ast",
		"albumin", "total_protein", "globulin", "bilirubin", "cholesterol",
		"calcium", "phosphorus", "sodium", "potassium", "chloride",
		"other",
	}
}

type LabValue struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index"`
	MedicalRecordID *uint     `gorm:"index"`
	Date            time.Time `gorm:"type:date;not null"`
	CreatedAt       time.Time

	TestName       string  `gorm:"not null"`
	CustomTestName string
	Value          float64 `gorm:"not null"`
	Unit           string

	ReferenceLow  *float64
	ReferenceHigh *float64

	IsAbnormal bool `gorm:"not null;default:false"`
	IsCritical bool `gorm:"not null;default:false"`

	Source      string `gorm:"not null;default:clinic"`
	AIExtracted bool   `gorm:"column:ai_extracted;not null;default:false"`

	Notes string
}
