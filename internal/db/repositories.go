package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Entries     *EntryRepository
	Medications *MedicationRepository
	Nodes       *NodeRepository
	Assessments *AssessmentRepository
	Treatments  *TreatmentRepository
	Nutrition   *NutritionRepository
	Records     *RecordRepository
	Timeline    *TimelineRepository
	Donors      *DonorRepository
	Settings    *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Entries:     NewEntryRepository(database),
		Medications: NewMedicationRepository(database),
		Nodes:       NewNodeRepository(database),
		Assessments: NewAssessmentRepository(database),
		Treatments:  NewTreatmentRepository(database),
		Nutrition:   NewNutritionRepository(database),
		Records:     NewRecordRepository(database),
		Timeline:    NewTimelineRepository(database),
		Donors:      NewDonorRepository(database),
		Settings:    NewSettingsRepository(database),
	}
}
