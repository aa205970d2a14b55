package services

import (
	"time"

	"brunotrack/internal/models"
)

const (
	TrendBetter = "better"
	TrendWorse  = "worse"
	TrendSame   = "same"

	// TrendNone marks a week that cannot be compared yet; it renders
	// as "--" rather than pretending the scores held steady.
	TrendNone = "none"
)

// trendThreshold is the minimum shift in mean overall score between two
// weeks before the trend stops reading "same".
const trendThreshold = 0.2

type DashboardAssessmentRepository interface {
	ListCBPIRecent(userID uint, limit int) ([]models.CBPIAssessment, error)
	ListCORQRecent(userID uint, limit int) ([]models.CORQAssessment, error)
}

type DashboardEventRepository interface {
	ListUnresolvedEvents(userID uint) ([]models.VCOGCTCAEEvent, error)
}

type DashboardService struct {
	entries     DailyEntryRepository
	nodes       NodeMeasurementRepository
	assessments DashboardAssessmentRepository
	events      DashboardEventRepository
	location    *time.Location
	now         func() time.Time
}

func NewDashboardService(
	entries DailyEntryRepository,
	nodes NodeMeasurementRepository,
	assessments DashboardAssessmentRepository,
	events DashboardEventRepository,
	location *time.Location,
) *DashboardService {
	return &DashboardService{
		entries:     entries,
		nodes:       nodes,
		assessments: assessments,
		events:      events,
		location:    location,
		now:         time.Now,
	}
}

// DashboardSummary is everything the landing page shows at a glance.
type DashboardSummary struct {
	TodayEntry       models.DailyEntry
	TodayHappiness   *float64
	TodayOverall     *float64
	GoodDayPercent   *float64
	Trend            string
	LatestCBPI       *models.CBPIAssessment
	LatestCBPIScores *CBPIScores
	LatestCORQ       *models.CORQAssessment
	LatestCORQScores *CORQScores
	LatestNodes      *models.LymphNodeMeasurement
	OpenEvents       []models.VCOGCTCAEEvent
}

func (service *DashboardService) BuildSummary(userID uint) (DashboardSummary, error) {
	now := service.now()
	dayStart, dayEnd := DayRange(now, service.location)

	summary := DashboardSummary{Trend: TrendNone}

	entry, found, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return DashboardSummary{}, err
	}
	if found {
		summary.TodayEntry = entry
		summary.TodayHappiness = HappinessScore(entry)
		summary.TodayOverall = OverallScore(entry)
	} else {
		summary.TodayEntry = models.DailyEntry{UserID: userID, Date: dayStart}
	}

	recentEntries, err := service.entries.ListByUserRange(userID, dayStart.AddDate(0, 0, -29), dayEnd)
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.GoodDayPercent = GoodDayPercent(recentEntries)
	summary.Trend = WeekTrend(recentEntries, now, service.location)

	cbpis, err := service.assessments.ListCBPIRecent(userID, 1)
	if err != nil {
		return DashboardSummary{}, err
	}
	if len(cbpis) > 0 {
		scores := ScoreCBPI(cbpis[0])
		summary.LatestCBPI = &cbpis[0]
		summary.LatestCBPIScores = &scores
	}

	corqs, err := service.assessments.ListCORQRecent(userID, 1)
	if err != nil {
		return DashboardSummary{}, err
	}
	if len(corqs) > 0 {
		scores := ScoreCORQ(corqs[0])
		summary.LatestCORQ = &corqs[0]
		summary.LatestCORQScores = &scores
	}

	nodes, err := service.nodes.ListRecent(userID, 1)
	if err != nil {
		return DashboardSummary{}, err
	}
	if len(nodes) > 0 {
		summary.LatestNodes = &nodes[0]
	}

	openEvents, err := service.events.ListUnresolvedEvents(userID)
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.OpenEvents = openEvents

	return summary, nil
}

// GoodDayPercent is the share of marked days that were good, over the
// entries that answered the question at all. Nil when none did.
func GoodDayPercent(entries []models.DailyEntry) *float64 {
	answered := 0
	good := 0
	for _, entry := range entries {
		if entry.GoodDay == "" {
			continue
		}
		answered++
		if entry.GoodDay == models.GoodDayYes {
			good++
		}
	}
	if answered == 0 {
		return nil
	}
	percent := RoundTo(float64(good)/float64(answered)*100, 1)
	return &percent
}

// WeekTrend compares the mean overall score of the last seven days with
// the seven before that.
func WeekTrend(entries []models.DailyEntry, now time.Time, location *time.Location) string {
	weekAgo := DateAtLocation(now, location).AddDate(0, 0, -6)
	recent := make([]float64, 0)
	previous := make([]float64, 0)
	for _, entry := range entries {
		score := OverallScore(entry)
		if score == nil {
			continue
		}
		if !DateAtLocation(entry.Date, location).Before(weekAgo) {
			recent = append(recent, *score)
		} else {
			previous = append(previous, *score)
		}
	}
	if len(recent) == 0 || len(previous) == 0 {
		return TrendNone
	}
	difference := meanOf(recent) - meanOf(previous)
	switch {
	case difference > trendThreshold:
		return TrendBetter
	case difference < -trendThreshold:
		return TrendWorse
	}
	return TrendSame
}

func meanOf(values []float64) float64 {
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}
