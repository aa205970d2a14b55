package services

import (
	"errors"
	"time"

	"brunotrack/internal/models"
)

var ErrUnknownChartType = errors.New("unknown chart type")

const (
	ChartDaily  = "daily"
	ChartCBPI   = "cbpi"
	ChartCORQ   = "corq"
	ChartNodes  = "nodes"
	ChartEvents = "events"
)

// ChartDataset is one plotted line; gaps stay nil so the client can
// span them.
type ChartDataset struct {
	Label string     `json:"label"`
	Data  []*float64 `json:"data"`
}

type ChartSeries struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartAssessmentRepository interface {
	ListCBPIRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CBPIAssessment, error)
	ListCORQRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CORQAssessment, error)
}

type ChartEventRepository interface {
	ListEventsRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.VCOGCTCAEEvent, error)
}

type ChartService struct {
	entries     DailyEntryRepository
	nodes       NodeMeasurementRepository
	assessments ChartAssessmentRepository
	events      ChartEventRepository
	location    *time.Location
	now         func() time.Time
}

func NewChartService(
	entries DailyEntryRepository,
	nodes NodeMeasurementRepository,
	assessments ChartAssessmentRepository,
	events ChartEventRepository,
	location *time.Location,
) *ChartService {
	return &ChartService{
		entries:     entries,
		nodes:       nodes,
		assessments: assessments,
		events:      events,
		location:    location,
		now:         time.Now,
	}
}

// Series builds the requested chart over the trailing number of days.
func (service *ChartService) Series(userID uint, chartType string, days int) (ChartSeries, error) {
	if days < 1 {
		days = 30
	}
	toStart, toEnd := DayRange(service.now(), service.location)
	fromStart := toStart.AddDate(0, 0, -(days - 1))

	switch chartType {
	case ChartDaily:
		return service.dailySeries(userID, fromStart, toEnd)
	case ChartCBPI:
		return service.cbpiSeries(userID, fromStart, toEnd)
	case ChartCORQ:
		return service.corqSeries(userID, fromStart, toEnd)
	case ChartNodes:
		return service.nodeSeries(userID, fromStart, toEnd)
	case ChartEvents:
		return service.eventSeries(userID, fromStart, toEnd)
	}
	return ChartSeries{}, ErrUnknownChartType
}

func (service *ChartService) dailySeries(userID uint, fromStart time.Time, toEnd time.Time) (ChartSeries, error) {
	entries, err := service.entries.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return ChartSeries{}, err
	}
	series := ChartSeries{
		Labels: make([]string, 0, len(entries)),
		Datasets: []ChartDataset{
			{Label: "happiness", Data: make([]*float64, 0, len(entries))},
			{Label: "overall", Data: make([]*float64, 0, len(entries))},
		},
	}
	for _, entry := range entries {
		series.Labels = append(series.Labels, service.dayLabel(entry.Date))
		series.Datasets[0].Data = append(series.Datasets[0].Data, HappinessScore(entry))
		series.Datasets[1].Data = append(series.Datasets[1].Data, OverallScore(entry))
	}
	return series, nil
}

func (service *ChartService) cbpiSeries(userID uint, fromStart time.Time, toEnd time.Time) (ChartSeries, error) {
	assessments, err := service.assessments.ListCBPIRange(userID, fromStart, toEnd)
	if err != nil {
		return ChartSeries{}, err
	}
	series := ChartSeries{
		Labels: make([]string, 0, len(assessments)),
		Datasets: []ChartDataset{
			{Label: "pain_severity", Data: make([]*float64, 0, len(assessments))},
			{Label: "pain_interference", Data: make([]*float64, 0, len(assessments))},
		},
	}
	for _, assessment := range assessments {
		scores := ScoreCBPI(assessment)
		series.Labels = append(series.Labels, service.dayLabel(assessment.Date))
		series.Datasets[0].Data = append(series.Datasets[0].Data, floatPointer(scores.PainSeverity))
		series.Datasets[1].Data = append(series.Datasets[1].Data, floatPointer(scores.PainInterference))
	}
	return series, nil
}

func (service *ChartService) corqSeries(userID uint, fromStart time.Time, toEnd time.Time) (ChartSeries, error) {
	assessments, err := service.assessments.ListCORQRange(userID, fromStart, toEnd)
	if err != nil {
		return ChartSeries{}, err
	}
	series := ChartSeries{
		Labels: make([]string, 0, len(assessments)),
		Datasets: []ChartDataset{
			{Label: "vitality", Data: make([]*float64, 0, len(assessments))},
			{Label: "companionship", Data: make([]*float64, 0, len(assessments))},
			{Label: "pain", Data: make([]*float64, 0, len(assessments))},
			{Label: "mobility", Data: make([]*float64, 0, len(assessments))},
			{Label: "total", Data: make([]*float64, 0, len(assessments))},
		},
	}
	for _, assessment := range assessments {
		scores := ScoreCORQ(assessment)
		series.Labels = append(series.Labels, service.dayLabel(assessment.Date))
		series.Datasets[0].Data = append(series.Datasets[0].Data, floatPointer(float64(scores.Vitality)))
		series.Datasets[1].Data = append(series.Datasets[1].Data, floatPointer(float64(scores.Companionship)))
		series.Datasets[2].Data = append(series.Datasets[2].Data, floatPointer(float64(scores.Pain)))
		series.Datasets[3].Data = append(series.Datasets[3].Data, floatPointer(float64(scores.Mobility)))
		series.Datasets[4].Data = append(series.Datasets[4].Data, floatPointer(float64(scores.Total)))
	}
	return series, nil
}

func (service *ChartService) nodeSeries(userID uint, fromStart time.Time, toEnd time.Time) (ChartSeries, error) {
	measurements, err := service.nodes.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return ChartSeries{}, err
	}
	series := ChartSeries{
		Labels: make([]string, 0, len(measurements)),
		Datasets: []ChartDataset{
			{Label: "mandibular_left", Data: make([]*float64, 0, len(measurements))},
			{Label: "mandibular_right", Data: make([]*float64, 0, len(measurements))},
			{Label: "popliteal_left", Data: make([]*float64, 0, len(measurements))},
			{Label: "popliteal_right", Data: make([]*float64, 0, len(measurements))},
		},
	}
	for _, measurement := range measurements {
		series.Labels = append(series.Labels, service.dayLabel(measurement.Date))
		series.Datasets[0].Data = append(series.Datasets[0].Data, measurement.MandibularLeft)
		series.Datasets[1].Data = append(series.Datasets[1].Data, measurement.MandibularRight)
		series.Datasets[2].Data = append(series.Datasets[2].Data, measurement.PoplitealLeft)
		series.Datasets[3].Data = append(series.Datasets[3].Data, measurement.PoplitealRight)
	}
	return series, nil
}

func (service *ChartService) eventSeries(userID uint, fromStart time.Time, toEnd time.Time) (ChartSeries, error) {
	events, err := service.events.ListEventsRange(userID, fromStart, toEnd)
	if err != nil {
		return ChartSeries{}, err
	}
	series := ChartSeries{
		Labels: make([]string, 0, len(events)),
		Datasets: []ChartDataset{
			{Label: "grade", Data: make([]*float64, 0, len(events))},
		},
	}
	for _, event := range events {
		series.Labels = append(series.Labels, service.dayLabel(event.Date))
		series.Datasets[0].Data = append(series.Datasets[0].Data, floatPointer(float64(event.Grade)))
	}
	return series, nil
}

func (service *ChartService) dayLabel(day time.Time) string {
	return DateAtLocation(day, service.location).Format("2006-01-02")
}

func floatPointer(value float64) *float64 {
	return &value
}
