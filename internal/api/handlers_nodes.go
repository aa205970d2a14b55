package api

import (
	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type nodeMeasurementPayload struct {
	Date            string   `json:"date" form:"date"`
	MandibularLeft  *float64 `json:"mandibular_left_cm" form:"mandibular_left_cm"`
	MandibularRight *float64 `json:"mandibular_right_cm" form:"mandibular_right_cm"`
	PoplitealLeft   *float64 `json:"popliteal_left_cm" form:"popliteal_left_cm"`
	PoplitealRight  *float64 `json:"popliteal_right_cm" form:"popliteal_right_cm"`
	Status          string   `json:"status" form:"status"`
	Source          string   `json:"source" form:"source"`
	Notes           string   `json:"notes" form:"notes"`
}

func (handler *Handler) ShowNodesPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	day, err := parseDateParam(c.Query("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	measurement, err := handler.nodes.FetchMeasurementForDate(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load measurement")
	}

	recent, err := handler.nodes.FetchRecentMeasurements(user.ID, 10)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load measurements")
	}

	return handler.render(c, "nodes", fiber.Map{
		"Date":        services.DateAtLocation(day, handler.location),
		"Measurement": measurement,
		"Recent":      recent,
	})
}

func (handler *Handler) SaveNodeMeasurement(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := nodeMeasurementPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	measurement, err := handler.nodes.SaveMeasurementForDate(user.ID, day, services.NodeMeasurementInput{
		MandibularLeft:  payload.MandibularLeft,
		MandibularRight: payload.MandibularRight,
		PoplitealLeft:   payload.PoplitealLeft,
		PoplitealRight:  payload.PoplitealRight,
		Status:          payload.Status,
		Source:          payload.Source,
		Notes:           payload.Notes,
	}, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save measurement")
	}

	return redirectOrJSON(c, "/nodes", fiber.Map{"status": "ok", "id": measurement.ID})
}
