package api

import (
	"time"

	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowDashboardPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	summary, err := handler.dashboard.BuildSummary(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build summary")
	}

	due, err := handler.reminders.DueReminders(time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reminders")
	}
	reminders := make([]services.DueReminder, 0, len(due))
	for _, reminder := range due {
		if reminder.UserID == user.ID {
			reminders = append(reminders, reminder)
		}
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Summary":   summary,
		"Reminders": reminders,
	})
}
