package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowCalendarPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	now := time.Now().In(handler.location)
	year := queryInt(c, "year", now.Year())
	month := queryInt(c, "month", int(now.Month()))
	if c.Params("year") != "" {
		if parsed, err := parseUintParam(c, "year"); err == nil {
			year = int(parsed)
		}
		if parsed, err := parseUintParam(c, "month"); err == nil {
			month = int(parsed)
		}
	}
	if month < 1 || month > 12 {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	weeks, err := handler.calendar.MonthGrid(user.ID, year, time.Month(month))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build calendar")
	}

	previous := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, handler.location).AddDate(0, -1, 0)
	next := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, handler.location).AddDate(0, 1, 0)

	return handler.render(c, "calendar", fiber.Map{
		"Year":     year,
		"Month":    time.Month(month),
		"Weeks":    weeks,
		"Previous": previous,
		"Next":     next,
		"WeekView": false,
	})
}

func (handler *Handler) ShowCalendarWeekPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	year, err := parseUintParam(c, "year")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}
	week, err := parseUintParam(c, "week")
	if err != nil || week < 1 || week > 53 {
		return apiError(c, fiber.StatusBadRequest, "invalid week")
	}

	days, err := handler.calendar.WeekDays(user.ID, int(year), int(week))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build calendar")
	}

	return handler.render(c, "calendar", fiber.Map{
		"Year":     int(year),
		"Week":     int(week),
		"Days":     days,
		"WeekView": true,
	})
}
