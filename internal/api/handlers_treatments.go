package api

import (
	"errors"

	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type treatmentSessionPayload struct {
	Date               string   `json:"date" form:"date"`
	TreatmentType      string   `json:"treatment_type" form:"treatment_type"`
	Protocol           string   `json:"protocol" form:"protocol"`
	Agent              string   `json:"agent" form:"agent"`
	Dose               string   `json:"dose" form:"dose"`
	CycleNumber        *int     `json:"cycle_number" form:"cycle_number"`
	PreTreatmentWeight *float64 `json:"pre_treatment_weight_kg" form:"pre_treatment_weight_kg"`
	Source             string   `json:"source" form:"source"`
	Notes              string   `json:"notes" form:"notes"`
}

type adverseEventPayload struct {
	Date         string `json:"date" form:"date"`
	Category     string `json:"category" form:"category"`
	Event        string `json:"event" form:"event"`
	Grade        int    `json:"grade" form:"grade"`
	Treatment    string `json:"treatment" form:"treatment"`
	Intervention string `json:"intervention" form:"intervention"`
	Source       string `json:"source" form:"source"`
	Notes        string `json:"notes" form:"notes"`
}

func (handler *Handler) ShowTreatmentsPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	sessions, err := handler.treatments.FetchSessions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load sessions")
	}

	return handler.render(c, "treatments", fiber.Map{"Sessions": sessions})
}

func (handler *Handler) LogTreatmentSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := treatmentSessionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	session, err := handler.treatments.LogSession(user.ID, services.TreatmentSessionInput{
		Date:               day,
		TreatmentType:      payload.TreatmentType,
		Protocol:           payload.Protocol,
		Agent:              payload.Agent,
		Dose:               payload.Dose,
		CycleNumber:        payload.CycleNumber,
		PreTreatmentWeight: payload.PreTreatmentWeight,
		Source:             payload.Source,
		Notes:              payload.Notes,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save session")
	}

	return redirectOrJSON(c, "/treatments", fiber.Map{"status": "ok", "id": session.ID})
}

func (handler *Handler) ShowEventsPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	events, err := handler.treatments.FetchEvents(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load events")
	}

	return handler.render(c, "events", fiber.Map{"Events": events})
}

func (handler *Handler) LogAdverseEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := adverseEventPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.Grade < 1 || payload.Grade > 5 {
		return apiError(c, fiber.StatusBadRequest, "grade must be between 1 and 5")
	}

	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	event, err := handler.treatments.LogEvent(user.ID, services.AdverseEventInput{
		Date:         day,
		Category:     payload.Category,
		Event:        payload.Event,
		Grade:        payload.Grade,
		Treatment:    payload.Treatment,
		Intervention: payload.Intervention,
		Source:       payload.Source,
		Notes:        payload.Notes,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save event")
	}

	return redirectOrJSON(c, "/events", fiber.Map{"status": "ok", "id": event.ID})
}

func (handler *Handler) ResolveAdverseEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	eventID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	resolvedOn, err := parseDateParam(c.FormValue("resolved_date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	event, err := handler.treatments.ResolveEvent(user.ID, eventID, resolvedOn)
	if err != nil {
		if errors.Is(err, services.ErrAdverseEventNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve event")
	}

	return redirectOrJSON(c, "/events", fiber.Map{"status": "ok", "id": event.ID})
}
