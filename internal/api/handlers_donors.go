package api

import (
	"errors"
	"time"

	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type donorPayload struct {
	FullName         string  `json:"full_name" form:"full_name"`
	City             string  `json:"city" form:"city"`
	Country          string  `json:"country" form:"country"`
	Language         string  `json:"language" form:"language"`
	Email            string  `json:"email" form:"email"`
	Phone            string  `json:"phone" form:"phone"`
	PreferredContact string  `json:"preferred_contact" form:"preferred_contact"`
	IncomeScale      int     `json:"income_scale" form:"income_scale"`
	DonationAmount   float64 `json:"donation_amount" form:"donation_amount"`
	DonationDate     string  `json:"donation_date" form:"donation_date"`
	HasShared        bool    `json:"has_shared" form:"has_shared"`
	ShareDate        string  `json:"share_date" form:"share_date"`
	Notes            string  `json:"notes" form:"notes"`
}

func (handler *Handler) parseDonorInput(c *fiber.Ctx) (services.DonorInput, error) {
	payload := donorPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.DonorInput{}, err
	}
	if payload.FullName == "" {
		return services.DonorInput{}, errors.New("full_name is required")
	}

	input := services.DonorInput{
		FullName:         payload.FullName,
		City:             payload.City,
		Country:          payload.Country,
		Language:         payload.Language,
		Email:            payload.Email,
		Phone:            payload.Phone,
		PreferredContact: payload.PreferredContact,
		IncomeScale:      payload.IncomeScale,
		DonationAmount:   payload.DonationAmount,
		HasShared:        payload.HasShared,
		Notes:            payload.Notes,
	}
	if payload.DonationDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", payload.DonationDate, handler.location)
		if err != nil {
			return services.DonorInput{}, err
		}
		input.DonationDate = &parsed
	}
	if payload.ShareDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", payload.ShareDate, handler.location)
		if err != nil {
			return services.DonorInput{}, err
		}
		input.ShareDate = &parsed
	}
	return input, nil
}

func (handler *Handler) ShowDonorsPage(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	donors, err := handler.donors.FetchDonors()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load donors")
	}

	return handler.render(c, "donors", fiber.Map{"Donors": donors})
}

func (handler *Handler) CreateDonor(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseDonorInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	donor, err := handler.donors.CreateDonor(input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save donor")
	}

	return redirectOrJSON(c, "/donors", fiber.Map{"status": "ok", "id": donor.ID})
}

func (handler *Handler) UpdateDonor(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	donorID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	input, err := handler.parseDonorInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	donor, err := handler.donors.UpdateDonor(donorID, input)
	if err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save donor")
	}

	return redirectOrJSON(c, "/donors", fiber.Map{"status": "ok", "id": donor.ID})
}

func (handler *Handler) DeleteDonor(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	donorID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	if err := handler.donors.DeleteDonor(donorID); err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete donor")
	}

	return redirectOrJSON(c, "/donors", fiber.Map{"status": "ok"})
}

func (handler *Handler) MarkDonorContacted(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	donorID, err := parseUintParam(c, "id")
	if err != nil {
		return notFound(c)
	}

	donor, err := handler.donors.MarkContacted(donorID)
	if err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			return notFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update donor")
	}

	return redirectOrJSON(c, "/donors", fiber.Map{"status": "ok", "id": donor.ID})
}
