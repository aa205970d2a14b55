package api

import (
	"errors"
	"os"
	"path/filepath"

	"brunotrack/internal/security"
	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type timelineEntryPayload struct {
	Date        string `json:"date" form:"date"`
	Title       string `json:"title" form:"title"`
	Kind        string `json:"kind" form:"kind"`
	Status      string `json:"status" form:"status"`
	ProviderID  *uint  `json:"provider_id" form:"provider_id"`
	Description string `json:"description" form:"description"`
}

type providerPayload struct {
	Name    string `json:"name" form:"name"`
	Kind    string `json:"kind" form:"kind"`
	Phone   string `json:"phone" form:"phone"`
	Email   string `json:"email" form:"email"`
	Address string `json:"address" form:"address"`
	Notes   string `json:"notes" form:"notes"`
}

func (handler *Handler) ShowTimelinePage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	entries, err := handler.timeline.FetchEntries(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load timeline")
	}

	providers, err := handler.timeline.FetchProviders(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load providers")
	}

	overdue := make(map[uint]bool, len(entries))
	for _, entry := range entries {
		overdue[entry.ID] = handler.timeline.Overdue(entry)
	}

	return handler.render(c, "timeline", fiber.Map{
		"Entries":   entries,
		"Providers": providers,
		"Overdue":   overdue,
	})
}

func (handler *Handler) parseTimelineEntryInput(c *fiber.Ctx) (services.TimelineEntryInput, error) {
	payload := timelineEntryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.TimelineEntryInput{}, err
	}
	if payload.Title == "" {
		return services.TimelineEntryInput{}, errors.New("title is required")
	}
	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return services.TimelineEntryInput{}, err
	}
	return services.TimelineEntryInput{
		Date:        day,
		Title:       payload.Title,
		Kind:        payload.Kind,
		Status:      payload.Status,
		ProviderID:  payload.ProviderID,
		Description: payload.Description,
	}, nil
}

func (handler *Handler) CreateTimelineEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseTimelineEntryInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.timeline.CreateEntry(user.ID, input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}

	return redirectOrJSON(c, "/timeline", fiber.Map{"status": "ok", "id": entry.ID, "entry_status": entry.Status})
}

func (handler *Handler) UpdateTimelineEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	input, err := handler.parseTimelineEntryInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.timeline.UpdateEntry(user.ID, entryID, input)
	if err != nil {
		if errors.Is(err, services.ErrTimelineEntryNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}

	return redirectOrJSON(c, "/timeline", fiber.Map{"status": "ok", "id": entry.ID, "entry_status": entry.Status})
}

func (handler *Handler) DeleteTimelineEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	if err := handler.timeline.DeleteEntry(user.ID, entryID); err != nil {
		if errors.Is(err, services.ErrTimelineEntryNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}

	return redirectOrJSON(c, "/timeline", fiber.Map{"status": "ok"})
}

func (handler *Handler) AttachTimelineFile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return apiError(c, fiber.StatusBadRequest, "file is required")
	}

	storedName := security.StoredName(file.Filename)
	if err := os.MkdirAll(handler.uploadDir, 0o755); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store file")
	}
	if err := c.SaveFile(file, filepath.Join(handler.uploadDir, storedName)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store file")
	}

	attachment, err := handler.timeline.AttachFile(user.ID, entryID, file.Filename, storedName, file.Size)
	if err != nil {
		if errors.Is(err, services.ErrTimelineEntryNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save attachment")
	}

	return c.JSON(fiber.Map{"status": "ok", "id": attachment.ID})
}

func (handler *Handler) DeleteTimelineAttachment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	attachmentID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	attachment, err := handler.timeline.DeleteAttachment(user.ID, attachmentID)
	if err != nil {
		if errors.Is(err, services.ErrAttachmentNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete attachment")
	}

	// Best effort; the row is already gone.
	_ = os.Remove(filepath.Join(handler.uploadDir, attachment.StoredName))

	return redirectOrJSON(c, "/timeline", fiber.Map{"status": "ok"})
}

func (handler *Handler) ShowProvidersPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	providers, err := handler.timeline.FetchProviders(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load providers")
	}

	return handler.render(c, "providers", fiber.Map{"Providers": providers})
}

func (handler *Handler) parseProviderInput(c *fiber.Ctx) (services.ProviderInput, error) {
	payload := providerPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.ProviderInput{}, err
	}
	if payload.Name == "" {
		return services.ProviderInput{}, errors.New("name is required")
	}
	return services.ProviderInput{
		Name:    payload.Name,
		Kind:    payload.Kind,
		Phone:   payload.Phone,
		Email:   payload.Email,
		Address: payload.Address,
		Notes:   payload.Notes,
	}, nil
}

func (handler *Handler) CreateProvider(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseProviderInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	provider, err := handler.timeline.CreateProvider(user.ID, input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save provider")
	}

	return redirectOrJSON(c, "/providers", fiber.Map{"status": "ok", "id": provider.ID})
}

func (handler *Handler) UpdateProvider(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	providerID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	input, err := handler.parseProviderInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	provider, err := handler.timeline.UpdateProvider(user.ID, providerID, input)
	if err != nil {
		if errors.Is(err, services.ErrProviderNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save provider")
	}

	return redirectOrJSON(c, "/providers", fiber.Map{"status": "ok", "id": provider.ID})
}

func (handler *Handler) DeleteProvider(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	providerID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	if err := handler.timeline.DeleteProvider(user.ID, providerID); err != nil {
		if errors.Is(err, services.ErrProviderNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete provider")
	}

	return redirectOrJSON(c, "/providers", fiber.Map{"status": "ok"})
}
