package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.AuthRequired, handler.Logout)

	app.Get("/", handler.AuthRequired, handler.ShowDashboardPage)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboardPage)

	app.Get("/tracker", handler.AuthRequired, handler.ShowTrackerPage)
	app.Post("/tracker/save", handler.AuthRequired, handler.SaveDailyEntry)

	app.Get("/medications", handler.AuthRequired, handler.ShowMedicationsPage)
	app.Post("/medications/add", handler.AuthRequired, handler.AddMedication)
	app.Post("/medications/:id/deactivate", handler.AuthRequired, handler.DeactivateMedication)
	app.Post("/medications/:id/dose", handler.AuthRequired, handler.LogMedicationDose)

	app.Get("/nodes", handler.AuthRequired, handler.ShowNodesPage)
	app.Post("/nodes/save", handler.AuthRequired, handler.SaveNodeMeasurement)

	app.Get("/cbpi", handler.AuthRequired, handler.ShowCBPIPage)
	app.Post("/cbpi/save", handler.AuthRequired, handler.SaveCBPI)
	app.Get("/corq", handler.AuthRequired, handler.ShowCORQPage)
	app.Post("/corq/save", handler.AuthRequired, handler.SaveCORQ)

	app.Get("/treatments", handler.AuthRequired, handler.ShowTreatmentsPage)
	app.Post("/treatments/save", handler.AuthRequired, handler.LogTreatmentSession)
	app.Get("/events", handler.AuthRequired, handler.ShowEventsPage)
	app.Post("/events/save", handler.AuthRequired, handler.LogAdverseEvent)
	app.Post("/events/:id/resolve", handler.AuthRequired, handler.ResolveAdverseEvent)

	app.Get("/nutrition", handler.AuthRequired, handler.ShowNutritionPage)
	app.Post("/nutrition/meal/save", handler.AuthRequired, handler.LogMeal)
	app.Post("/nutrition/supplement/save", handler.AuthRequired, handler.LogSupplement)
	app.Post("/nutrition/weight/update", handler.AuthRequired, handler.UpdateWeight)
	app.Get("/foods", handler.AuthRequired, handler.ShowFoodsPage)
	app.Post("/foods/add", handler.AuthRequired, handler.AddFood)
	app.Get("/planning", handler.AuthRequired, handler.ShowPlanningPage)

	app.Get("/records", handler.AuthRequired, handler.ShowRecordsPage)
	app.Post("/records/upload", handler.AuthRequired, handler.UploadRecord)
	app.Get("/records/:id", handler.AuthRequired, handler.ShowRecordDetailPage)
	app.Get("/records/:id/download", handler.AuthRequired, handler.DownloadRecordFile)
	app.Post("/records/:id/delete", handler.AuthRequired, handler.DeleteRecord)
	app.Post("/records/:id/labs/save", handler.AuthRequired, handler.AddLabValue)

	app.Get("/timeline", handler.AuthRequired, handler.ShowTimelinePage)
	app.Post("/timeline/entries", handler.AuthRequired, handler.CreateTimelineEntry)
	app.Post("/timeline/entries/:id", handler.AuthRequired, handler.UpdateTimelineEntry)
	app.Post("/timeline/entries/:id/delete", handler.AuthRequired, handler.DeleteTimelineEntry)
	app.Post("/timeline/entries/:id/attachments", handler.AuthRequired, handler.AttachTimelineFile)
	app.Post("/timeline/attachments/:id/delete", handler.AuthRequired, handler.DeleteTimelineAttachment)

	app.Get("/providers", handler.AuthRequired, handler.ShowProvidersPage)
	app.Post("/providers/add", handler.AuthRequired, handler.CreateProvider)
	app.Post("/providers/:id", handler.AuthRequired, handler.UpdateProvider)
	app.Post("/providers/:id/delete", handler.AuthRequired, handler.DeleteProvider)

	app.Get("/calendar", handler.AuthRequired, handler.ShowCalendarPage)
	app.Get("/calendar/week/:year/:week", handler.AuthRequired, handler.ShowCalendarWeekPage)
	app.Get("/calendar/:year/:month", handler.AuthRequired, handler.ShowCalendarPage)

	app.Get("/settings", handler.AuthRequired, handler.ShowSettingsPage)
	app.Post("/settings/save", handler.AuthRequired, handler.SaveSettings)

	app.Get("/donors", handler.AuthRequired, handler.ShowDonorsPage)
	app.Post("/donors/add", handler.AuthRequired, handler.CreateDonor)
	app.Post("/donors/:id", handler.AuthRequired, handler.UpdateDonor)
	app.Post("/donors/:id/delete", handler.AuthRequired, handler.DeleteDonor)
	app.Post("/donors/:id/contacted", handler.AuthRequired, handler.MarkDonorContacted)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.AuthRequired)

	api.Get("/chart-data", handler.ChartDataAPI)
	api.Get("/foods", handler.ListFoodsAPI)
	api.Get("/nutrition", handler.NutritionRangeAPI)
	api.Get("/lab-values", handler.LabTrendAPI)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
