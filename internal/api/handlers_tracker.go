package api

import (
	"errors"

	"brunotrack/internal/models"
	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

type dailyEntryPayload struct {
	Date    string `json:"date" form:"date"`
	GoodDay string `json:"good_day" form:"good_day"`

	TailBodyLanguage    *int `json:"tail_body_language" form:"tail_body_language"`
	InterestPeople      *int `json:"interest_people" form:"interest_people"`
	InterestEnvironment *int `json:"interest_environment" form:"interest_environment"`
	EnjoymentFavorites  *int `json:"enjoyment_favorites" form:"enjoyment_favorites"`
	OverallSpark        *int `json:"overall_spark" form:"overall_spark"`

	Appetite        *int `json:"appetite" form:"appetite"`
	FoodEnjoyment   *int `json:"food_enjoyment" form:"food_enjoyment"`
	NauseaSigns     *int `json:"nausea_signs" form:"nausea_signs"`
	WeightCondition *int `json:"weight_condition" form:"weight_condition"`

	Breakfast bool `json:"breakfast" form:"breakfast"`
	Lunch     bool `json:"lunch" form:"lunch"`
	Dinner    bool `json:"dinner" form:"dinner"`
	Treats    bool `json:"treats" form:"treats"`

	EnergyLevel     *int `json:"energy_level" form:"energy_level"`
	WillingnessMove *int `json:"willingness_move" form:"willingness_move"`
	WalkingComfort  *int `json:"walking_comfort" form:"walking_comfort"`
	RestingComfort  *int `json:"resting_comfort" form:"resting_comfort"`

	BreathingComfort *int `json:"breathing_comfort" form:"breathing_comfort"`
	PainSigns        *int `json:"pain_signs" form:"pain_signs"`
	SleepQuality     *int `json:"sleep_quality" form:"sleep_quality"`
	ResponseTouch    *int `json:"response_touch" form:"response_touch"`

	GoodNotes  string `json:"good_notes" form:"good_notes"`
	HardNotes  string `json:"hard_notes" form:"hard_notes"`
	OtherNotes string `json:"other_notes" form:"other_notes"`
}

func (payload dailyEntryPayload) validate() error {
	switch payload.GoodDay {
	case "", models.GoodDayYes, models.GoodDayMixed, models.GoodDayNo:
	default:
		return errors.New("invalid good_day value")
	}

	ratings := []*int{
		payload.TailBodyLanguage, payload.InterestPeople, payload.InterestEnvironment,
		payload.EnjoymentFavorites, payload.OverallSpark,
		payload.Appetite, payload.FoodEnjoyment, payload.NauseaSigns, payload.WeightCondition,
		payload.EnergyLevel, payload.WillingnessMove, payload.WalkingComfort, payload.RestingComfort,
		payload.BreathingComfort, payload.PainSigns, payload.SleepQuality, payload.ResponseTouch,
	}
	for _, rating := range ratings {
		if rating != nil && (*rating < 1 || *rating > 5) {
			return errors.New("rating out of range")
		}
	}
	return nil
}

func (payload dailyEntryPayload) toInput() services.DailyEntryInput {
	return services.DailyEntryInput{
		GoodDay: payload.GoodDay,

		TailBodyLanguage:    payload.TailBodyLanguage,
		InterestPeople:      payload.InterestPeople,
		InterestEnvironment: payload.InterestEnvironment,
		EnjoymentFavorites:  payload.EnjoymentFavorites,
		OverallSpark:        payload.OverallSpark,

		Appetite:        payload.Appetite,
		FoodEnjoyment:   payload.FoodEnjoyment,
		NauseaSigns:     payload.NauseaSigns,
		WeightCondition: payload.WeightCondition,

		Breakfast: payload.Breakfast,
		Lunch:     payload.Lunch,
		Dinner:    payload.Dinner,
		Treats:    payload.Treats,

		EnergyLevel:     payload.EnergyLevel,
		WillingnessMove: payload.WillingnessMove,
		WalkingComfort:  payload.WalkingComfort,
		RestingComfort:  payload.RestingComfort,

		BreathingComfort: payload.BreathingComfort,
		PainSigns:        payload.PainSigns,
		SleepQuality:     payload.SleepQuality,
		ResponseTouch:    payload.ResponseTouch,

		GoodNotes:  payload.GoodNotes,
		HardNotes:  payload.HardNotes,
		OtherNotes: payload.OtherNotes,
	}
}

func (handler *Handler) ShowTrackerPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	day, err := parseDateParam(c.Query("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.entries.FetchEntryForDate(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entry")
	}

	doses, err := handler.medications.FetchDosesForDate(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load doses")
	}

	medications, err := handler.medications.FetchActive(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load medications")
	}

	recent, err := handler.entries.FetchRecentEntries(user.ID, 14)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load recent entries")
	}
	lastWeek := recent
	if len(lastWeek) > 7 {
		lastWeek = lastWeek[:7]
	}

	return handler.render(c, "tracker", fiber.Map{
		"Date":           services.DateAtLocation(day, handler.location),
		"Entry":          entry,
		"Doses":          doses,
		"Medications":    medications,
		"Recent":         recent,
		"GoodDayPercent": services.GoodDayPercent(lastWeek),
		"HappinessScore": services.HappinessScore(entry),
		"OverallScore":   services.OverallScore(entry),
	})
}

// SaveDailyEntry upserts the day's entry in one statement so concurrent
// saves for the same day collapse onto a single row.
func (handler *Handler) SaveDailyEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := dailyEntryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := payload.validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.entries.SaveEntryForDate(user.ID, day, payload.toInput(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}

	return c.JSON(fiber.Map{
		"status":          "ok",
		"happiness_score": services.HappinessScore(entry),
		"overall_score":   services.OverallScore(entry),
	})
}
