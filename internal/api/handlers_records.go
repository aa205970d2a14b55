package api

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"brunotrack/internal/models"
	"brunotrack/internal/security"
	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type labValuePayload struct {
	Date           string   `json:"date" form:"date"`
	TestName       string   `json:"test_name" form:"test_name"`
	CustomTestName string   `json:"custom_test_name" form:"custom_test_name"`
	Value          float64  `json:"value" form:"value"`
	Unit           string   `json:"unit" form:"unit"`
	ReferenceLow   *float64 `json:"reference_low" form:"reference_low"`
	ReferenceHigh  *float64 `json:"reference_high" form:"reference_high"`
	IsCritical     bool     `json:"is_critical" form:"is_critical"`
	Source         string   `json:"source" form:"source"`
	Notes          string   `json:"notes" form:"notes"`
}

func (handler *Handler) ShowRecordsPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	records, err := handler.records.FetchRecords(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}

	abnormal, err := handler.records.FetchRecentAbnormal(user.ID, 10)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load lab values")
	}

	return handler.render(c, "records", fiber.Map{
		"Records":     records,
		"Abnormal":    abnormal,
		"RecordTypes": models.RecordTypes(),
	})
}

// UploadRecord stores the file under a random name and keeps the
// original name for display only.
func (handler *Handler) UploadRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return apiError(c, fiber.StatusBadRequest, "file is required")
	}

	day, err := parseDateParam(c.FormValue("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	storedName := security.StoredName(file.Filename)
	if err := os.MkdirAll(handler.uploadDir, 0o755); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store file")
	}
	if err := c.SaveFile(file, filepath.Join(handler.uploadDir, storedName)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store file")
	}

	record, err := handler.records.StoreUpload(user.ID, services.MedicalRecordInput{
		Date:         day,
		RecordType:   c.FormValue("record_type"),
		Title:        c.FormValue("title"),
		FileName:     file.Filename,
		StoredName:   storedName,
		FileType:     strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), "."),
		Source:       c.FormValue("source"),
		ClinicName:   c.FormValue("clinic_name"),
		Veterinarian: c.FormValue("veterinarian"),
		Notes:        c.FormValue("notes"),
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}

	return redirectOrJSON(c, "/records", fiber.Map{"status": "ok", "id": record.ID})
}

func (handler *Handler) ShowRecordDetailPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	recordID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	record, err := handler.records.FetchRecord(user.ID, recordID)
	if err != nil {
		if errors.Is(err, services.ErrMedicalRecordNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load record")
	}

	return handler.render(c, "record_detail", fiber.Map{
		"Record":    record,
		"TestNames": models.LabTestNames(),
	})
}

func (handler *Handler) DownloadRecordFile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	record, err := handler.records.FetchRecord(user.ID, recordID)
	if err != nil {
		if errors.Is(err, services.ErrMedicalRecordNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load record")
	}

	return c.Download(filepath.Join(handler.uploadDir, record.StoredName), record.FileName)
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	record, err := handler.records.FetchRecord(user.ID, recordID)
	if err != nil {
		if errors.Is(err, services.ErrMedicalRecordNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load record")
	}

	if err := handler.records.DeleteRecord(user.ID, recordID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}

	// Best effort; the row is already gone.
	_ = os.Remove(filepath.Join(handler.uploadDir, record.StoredName))

	return redirectOrJSON(c, "/records", fiber.Map{"status": "ok"})
}

func (handler *Handler) AddLabValue(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	payload := labValuePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.TestName == "" {
		return apiError(c, fiber.StatusBadRequest, "test_name is required")
	}

	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	value, err := handler.records.AddLabValue(user.ID, recordID, services.LabValueInput{
		Date:           day,
		TestName:       payload.TestName,
		CustomTestName: payload.CustomTestName,
		Value:          payload.Value,
		Unit:           payload.Unit,
		ReferenceLow:   payload.ReferenceLow,
		ReferenceHigh:  payload.ReferenceHigh,
		IsCritical:     payload.IsCritical,
		Source:         payload.Source,
		Notes:          payload.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrMedicalRecordNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save lab value")
	}

	return c.JSON(fiber.Map{
		"status":      "ok",
		"id":          value.ID,
		"is_abnormal": value.IsAbnormal,
	})
}

func (handler *Handler) LabTrendAPI(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	testName := strings.TrimSpace(c.Query("test"))
	if testName == "" {
		return apiError(c, fiber.StatusBadRequest, "test is required")
	}

	values, err := handler.records.FetchLabTrend(user.ID, testName)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load lab values")
	}

	return c.JSON(fiber.Map{"test": testName, "values": values})
}
