package api

import (
	"errors"
	"time"

	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type medicationPayload struct {
	Name          string   `json:"name" form:"name"`
	Dosage        string   `json:"dosage" form:"dosage"`
	Frequency     string   `json:"frequency" form:"frequency"`
	Notes         string   `json:"notes" form:"notes"`
	ScheduleTimes []string `json:"schedule_times" form:"schedule_times"`
}

type dosePayload struct {
	GivenAt string `json:"given_at" form:"given_at"`
	Notes   string `json:"notes" form:"notes"`
}

func (handler *Handler) ShowMedicationsPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	medications, err := handler.medications.FetchActive(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load medications")
	}

	today := time.Now().In(handler.location)
	doses, err := handler.medications.FetchDosesForDate(user.ID, today, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load doses")
	}

	return handler.render(c, "medications", fiber.Map{
		"Medications": medications,
		"Doses":       doses,
		"Today":       services.DateAtLocation(today, handler.location),
	})
}

func (handler *Handler) AddMedication(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := medicationPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.Name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	medication, err := handler.medications.AddMedication(user.ID, services.MedicationInput{
		Name:          payload.Name,
		Dosage:        payload.Dosage,
		Frequency:     payload.Frequency,
		Notes:         payload.Notes,
		ScheduleTimes: payload.ScheduleTimes,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save medication")
	}

	return redirectOrJSON(c, "/medications", fiber.Map{"status": "ok", "id": medication.ID})
}

func (handler *Handler) DeactivateMedication(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	medicationID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	if err := handler.medications.Deactivate(user.ID, medicationID); err != nil {
		if errors.Is(err, services.ErrMedicationNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update medication")
	}

	return redirectOrJSON(c, "/medications", fiber.Map{"status": "ok"})
}

func (handler *Handler) LogMedicationDose(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	medicationID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	payload := dosePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	givenAt := time.Now().In(handler.location)
	if payload.GivenAt != "" {
		parsed, err := time.ParseInLocation("2006-01-02T15:04", payload.GivenAt, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid given_at")
		}
		givenAt = parsed
	}

	dose, err := handler.medications.LogDose(user.ID, medicationID, givenAt, payload.Notes)
	if err != nil {
		if errors.Is(err, services.ErrMedicationNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to log dose")
	}

	return redirectOrJSON(c, "/medications", fiber.Map{"status": "ok", "id": dose.ID})
}
