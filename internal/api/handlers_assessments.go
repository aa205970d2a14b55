package api

import (
	"errors"

	"brunotrack/internal/models"
	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type cbpiPayload struct {
	Date   string `json:"date" form:"date"`
	Source string `json:"source" form:"source"`

	WorstPain   int `json:"worst_pain" form:"worst_pain"`
	LeastPain   int `json:"least_pain" form:"least_pain"`
	AveragePain int `json:"average_pain" form:"average_pain"`
	CurrentPain int `json:"current_pain" form:"current_pain"`

	GeneralActivity int `json:"general_activity" form:"general_activity"`
	EnjoymentOfLife int `json:"enjoyment_of_life" form:"enjoyment_of_life"`
	AbilityToRise   int `json:"ability_to_rise" form:"ability_to_rise"`
	AbilityToWalk   int `json:"ability_to_walk" form:"ability_to_walk"`
	AbilityToRun    int `json:"ability_to_run" form:"ability_to_run"`
	AbilityToClimb  int `json:"ability_to_climb" form:"ability_to_climb"`

	OverallQualityOfLife int    `json:"overall_quality_of_life" form:"overall_quality_of_life"`
	Notes                string `json:"notes" form:"notes"`
}

type corqPayload struct {
	Date   string `json:"date" form:"date"`
	Source string `json:"source" form:"source"`

	EnergyLevel            int `json:"energy_level" form:"energy_level"`
	Playfulness            int `json:"playfulness" form:"playfulness"`
	InterestInSurroundings int `json:"interest_in_surroundings" form:"interest_in_surroundings"`
	Appetite               int `json:"appetite" form:"appetite"`

	SeeksAttention    int `json:"seeks_attention" form:"seeks_attention"`
	EnjoysInteraction int `json:"enjoys_interaction" form:"enjoys_interaction"`
	GreetsFamily      int `json:"greets_family" form:"greets_family"`
	TailWagging       int `json:"tail_wagging" form:"tail_wagging"`

	ShowsPain     int `json:"shows_pain" form:"shows_pain"`
	VocalizesPain int `json:"vocalizes_pain" form:"vocalizes_pain"`
	AvoidsTouch   int `json:"avoids_touch" form:"avoids_touch"`
	PantsRestless int `json:"pants_restless" form:"pants_restless"`

	WalksNormally int `json:"walks_normally" form:"walks_normally"`
	RisesEasily   int `json:"rises_easily" form:"rises_easily"`
	ClimbsStairs  int `json:"climbs_stairs" form:"climbs_stairs"`
	Jumps         int `json:"jumps" form:"jumps"`

	GlobalQOL int    `json:"global_qol" form:"global_qol"`
	Notes     string `json:"notes" form:"notes"`
}

func (handler *Handler) ShowCBPIPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	recent, err := handler.assessments.FetchRecentCBPI(user.ID, 10)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load assessments")
	}

	scores := make([]services.CBPIScores, 0, len(recent))
	for _, assessment := range recent {
		scores = append(scores, services.ScoreCBPI(assessment))
	}

	return handler.render(c, "cbpi", fiber.Map{
		"Recent": recent,
		"Scores": scores,
	})
}

func (handler *Handler) SaveCBPI(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := cbpiPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	assessment := models.CBPIAssessment{
		Date:   day,
		Source: payload.Source,

		WorstPain:   payload.WorstPain,
		LeastPain:   payload.LeastPain,
		AveragePain: payload.AveragePain,
		CurrentPain: payload.CurrentPain,

		GeneralActivity: payload.GeneralActivity,
		EnjoymentOfLife: payload.EnjoymentOfLife,
		AbilityToRise:   payload.AbilityToRise,
		AbilityToWalk:   payload.AbilityToWalk,
		AbilityToRun:    payload.AbilityToRun,
		AbilityToClimb:  payload.AbilityToClimb,

		OverallQualityOfLife: payload.OverallQualityOfLife,
		Notes:                payload.Notes,
	}

	saved, scores, err := handler.assessments.SaveCBPI(user.ID, assessment)
	if err != nil {
		if errors.Is(err, services.ErrCBPIItemOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, "items must be between 0 and 10")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save assessment")
	}

	return c.JSON(fiber.Map{
		"status":                  "ok",
		"id":                      saved.ID,
		"pain_severity_score":     scores.PainSeverity,
		"pain_interference_score": scores.PainInterference,
	})
}

func (handler *Handler) ShowCORQPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	recent, err := handler.assessments.FetchRecentCORQ(user.ID, 10)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load assessments")
	}

	scores := make([]services.CORQScores, 0, len(recent))
	for _, assessment := range recent {
		scores = append(scores, services.ScoreCORQ(assessment))
	}

	return handler.render(c, "corq", fiber.Map{
		"Recent": recent,
		"Scores": scores,
	})
}

func (handler *Handler) SaveCORQ(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := corqPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	assessment := models.CORQAssessment{
		Date:   day,
		Source: payload.Source,

		EnergyLevel:            payload.EnergyLevel,
		Playfulness:            payload.Playfulness,
		InterestInSurroundings: payload.InterestInSurroundings,
		Appetite:               payload.Appetite,

		SeeksAttention:    payload.SeeksAttention,
		EnjoysInteraction: payload.EnjoysInteraction,
		GreetsFamily:      payload.GreetsFamily,
		TailWagging:       payload.TailWagging,

		ShowsPain:     payload.ShowsPain,
		VocalizesPain: payload.VocalizesPain,
		AvoidsTouch:   payload.AvoidsTouch,
		PantsRestless: payload.PantsRestless,

		WalksNormally: payload.WalksNormally,
		RisesEasily:   payload.RisesEasily,
		ClimbsStairs:  payload.ClimbsStairs,
		Jumps:         payload.Jumps,

		GlobalQOL: payload.GlobalQOL,
		Notes:     payload.Notes,
	}

	saved, scores, err := handler.assessments.SaveCORQ(user.ID, assessment)
	if err != nil {
		if errors.Is(err, services.ErrCORQItemOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, "items must be between 1 and 5")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save assessment")
	}

	return c.JSON(fiber.Map{
		"status":              "ok",
		"id":                  saved.ID,
		"vitality_score":      scores.Vitality,
		"companionship_score": scores.Companionship,
		"pain_score":          scores.Pain,
		"mobility_score":      scores.Mobility,
		"total_score":         scores.Total,
	})
}
