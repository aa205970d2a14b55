package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"brunotrack/internal/db"
	"brunotrack/internal/i18n"
	"brunotrack/internal/models"
	"brunotrack/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	repos        *db.Repositories
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	uploadDir    string
	i18n         *i18n.Manager
	templates    map[string]*template.Template
	logger       *zap.Logger

	auth        *services.AuthService
	entries     *services.EntryService
	medications *services.MedicationService
	nodes       *services.NodeService
	assessments *services.AssessmentService
	treatments  *services.TreatmentService
	nutrition   *services.NutritionService
	records     *services.RecordService
	timeline    *services.TimelineService
	calendar    *services.CalendarService
	dashboard   *services.DashboardService
	charts      *services.ChartService
	donors      *services.DonorService
	reminders   *services.ReminderService
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secret string, templateDir string, uploadDir string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool, log *zap.Logger) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	templates, err := parseTemplates(templateDir)
	if err != nil {
		return nil, err
	}

	repos := db.NewRepositories(database)
	handler := &Handler{
		repos:        repos,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		uploadDir:    uploadDir,
		i18n:         i18nManager,
		templates:    templates,
		logger:       log,

		auth:        services.NewAuthService(repos.Users),
		entries:     services.NewEntryService(repos.Entries),
		medications: services.NewMedicationService(repos.Medications),
		nodes:       services.NewNodeService(repos.Nodes),
		assessments: services.NewAssessmentService(repos.Assessments, location),
		treatments:  services.NewTreatmentService(repos.Treatments, location),
		nutrition:   services.NewNutritionService(repos.Nutrition),
		records:     services.NewRecordService(repos.Records, location),
		timeline:    services.NewTimelineService(repos.Timeline, location),
		calendar:    services.NewCalendarService(repos.Timeline, repos.Entries, location),
		dashboard:   services.NewDashboardService(repos.Entries, repos.Nodes, repos.Assessments, repos.Treatments, location),
		charts:      services.NewChartService(repos.Entries, repos.Nodes, repos.Assessments, repos.Treatments, location),
		donors:      services.NewDonorService(repos.Donors),
		reminders:   services.NewReminderService(repos.Medications, log, location),
	}
	return handler, nil
}

// Reminders exposes the medication reminder loop for the caller to run.
func (handler *Handler) Reminders() *services.ReminderService {
	return handler.reminders
}

func parseTemplates(templateDir string) (map[string]*template.Template, error) {
	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatFloat": func(value float64) string {
			return fmt.Sprintf("%.1f", value)
		},
		"t": func(messages map[string]string, key string) string {
			return translateMessage(messages, key)
		},
		"deref": func(value *float64) float64 {
			if value == nil {
				return 0
			}
			return *value
		},
		"derefInt": func(value *int) int {
			if value == nil {
				return 0
			}
			return *value
		},
		"happiness": func(entry models.DailyEntry) *float64 {
			return services.HappinessScore(entry)
		},
		"isActiveRoute": func(currentPath string, route string) bool {
			if route == "/" {
				return currentPath == "/"
			}
			return currentPath == route || len(currentPath) > len(route) && currentPath[:len(route)+1] == route+"/"
		},
		"toJSON": func(value any) template.JS {
			serialized, _ := json.Marshal(value)
			return template.JS(serialized)
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"dashboard",
		"tracker",
		"medications",
		"nodes",
		"cbpi",
		"corq",
		"treatments",
		"events",
		"nutrition",
		"foods",
		"planning",
		"records",
		"record_detail",
		"timeline",
		"providers",
		"calendar",
		"settings",
		"donors",
	}
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}
