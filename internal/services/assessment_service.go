package services

import (
	"errors"
	"time"

	"brunotrack/internal/models"
)

var (
	ErrCBPIItemOutOfRange = errors.New("cbpi item out of range")
	ErrCORQItemOutOfRange = errors.New("corq item out of range")
)

type AssessmentStore interface {
	CreateCBPI(assessment *models.CBPIAssessment) error
	ListCBPIRecent(userID uint, limit int) ([]models.CBPIAssessment, error)
	CreateCORQ(assessment *models.CORQAssessment) error
	ListCORQRecent(userID uint, limit int) ([]models.CORQAssessment, error)
}

type AssessmentService struct {
	assessments AssessmentStore
	location    *time.Location
}

func NewAssessmentService(assessments AssessmentStore, location *time.Location) *AssessmentService {
	return &AssessmentService{assessments: assessments, location: location}
}

// SaveCBPI validates the 0-10 item range, stores the questionnaire and
// returns its derived scores. Scores are never persisted.
func (service *AssessmentService) SaveCBPI(userID uint, assessment models.CBPIAssessment) (models.CBPIAssessment, CBPIScores, error) {
	for _, item := range assessment.SeverityItems() {
		if item < 0 || item > 10 {
			return models.CBPIAssessment{}, CBPIScores{}, ErrCBPIItemOutOfRange
		}
	}
	for _, item := range assessment.InterferenceItems() {
		if item < 0 || item > 10 {
			return models.CBPIAssessment{}, CBPIScores{}, ErrCBPIItemOutOfRange
		}
	}
	assessment.UserID = userID
	assessment.Date = DateAtLocation(assessment.Date, service.location)
	if assessment.Source == "" {
		assessment.Source = models.SourceHome
	}
	if err := service.assessments.CreateCBPI(&assessment); err != nil {
		return models.CBPIAssessment{}, CBPIScores{}, err
	}
	return assessment, ScoreCBPI(assessment), nil
}

// SaveCORQ validates the 1-5 item range, stores the questionnaire and
// returns its factor scores.
func (service *AssessmentService) SaveCORQ(userID uint, assessment models.CORQAssessment) (models.CORQAssessment, CORQScores, error) {
	items := make([]int, 0, 16)
	items = append(items, assessment.VitalityItems()...)
	items = append(items, assessment.CompanionshipItems()...)
	items = append(items, assessment.PainItems()...)
	items = append(items, assessment.MobilityItems()...)
	for _, item := range items {
		if item < 1 || item > 5 {
			return models.CORQAssessment{}, CORQScores{}, ErrCORQItemOutOfRange
		}
	}
	assessment.UserID = userID
	assessment.Date = DateAtLocation(assessment.Date, service.location)
	if assessment.Source == "" {
		assessment.Source = models.SourceHome
	}
	if err := service.assessments.CreateCORQ(&assessment); err != nil {
		return models.CORQAssessment{}, CORQScores{}, err
	}
	return assessment, ScoreCORQ(assessment), nil
}

func (service *AssessmentService) FetchRecentCBPI(userID uint, limit int) ([]models.CBPIAssessment, error) {
	return service.assessments.ListCBPIRecent(userID, limit)
}

func (service *AssessmentService) FetchRecentCORQ(userID uint, limit int) ([]models.CORQAssessment, error) {
	return service.assessments.ListCORQRecent(userID, limit)
}
