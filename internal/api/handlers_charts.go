package api

import (
	"errors"

	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ChartDataAPI feeds the dashboard charts. Unknown types are the
// caller's mistake, not ours.
func (handler *Handler) ChartDataAPI(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	chartType := c.Query("type", services.ChartDaily)
	days := queryInt(c, "days", 30)

	series, err := handler.charts.Series(user.ID, chartType, days)
	if err != nil {
		if errors.Is(err, services.ErrUnknownChartType) {
			return apiError(c, fiber.StatusBadRequest, "unknown chart type")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to build chart data")
	}

	return c.JSON(series)
}
