package api

import (
	"errors"
	"time"

	"brunotrack/internal/models"
	"brunotrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// defaultWeightKG seeds the nutrition page before the first weigh-in.
const defaultWeightKG = 30.0

type mealItemPayload struct {
	FoodID         *uint  `json:"food_id" form:"food_id"`
	CustomFoodName string `json:"custom_food_name" form:"custom_food_name"`
	AmountG        int    `json:"amount_g" form:"amount_g"`
	AmountDisplay  string `json:"amount_display" form:"amount_display"`
}

type mealPayload struct {
	Date     string            `json:"date" form:"date"`
	MealType string            `json:"meal_type" form:"meal_type"`
	Time     string            `json:"time" form:"time"`
	Appetite string            `json:"appetite" form:"appetite"`
	HandFed  bool              `json:"hand_fed" form:"hand_fed"`
	Warmed   bool              `json:"warmed" form:"warmed"`
	Notes    string            `json:"notes" form:"notes"`
	Items    []mealItemPayload `json:"items" form:"items"`
}

type supplementPayload struct {
	Date           string `json:"date" form:"date"`
	SupplementType string `json:"supplement_type" form:"supplement_type"`
	ProductName    string `json:"product_name" form:"product_name"`
	DoseAmount     string `json:"dose_amount" form:"dose_amount"`
	CalciumMG      *int   `json:"calcium_mg" form:"calcium_mg"`
	EPAMG          *int   `json:"epa_mg" form:"epa_mg"`
	DHAMG          *int   `json:"dha_mg" form:"dha_mg"`
	Notes          string `json:"notes" form:"notes"`
}

type weightPayload struct {
	WeightKG       float64  `json:"weight_kg" form:"weight_kg"`
	TargetWeightKG *float64 `json:"target_weight_kg" form:"target_weight_kg"`
}

type foodPayload struct {
	Name             string   `json:"name" form:"name"`
	Category         string   `json:"category" form:"category"`
	Status           string   `json:"status" form:"status"`
	CaloriesPer100G  *int     `json:"calories_per_100g" form:"calories_per_100g"`
	ProteinGPer100G  *float64 `json:"protein_g_per_100g" form:"protein_g_per_100g"`
	FatGPer100G      *float64 `json:"fat_g_per_100g" form:"fat_g_per_100g"`
	CarbsGPer100G    *float64 `json:"carbs_g_per_100g" form:"carbs_g_per_100g"`
	EPAMGPer100G     *int     `json:"epa_mg_per_100g" form:"epa_mg_per_100g"`
	DHAMGPer100G     *int     `json:"dha_mg_per_100g" form:"dha_mg_per_100g"`
	CalciumMGPer100G *int     `json:"calcium_mg_per_100g" form:"calcium_mg_per_100g"`
	MaxPerDay        string   `json:"max_per_day" form:"max_per_day"`
	MaxPerWeek       *int     `json:"max_per_week" form:"max_per_week"`
	Notes            string   `json:"notes" form:"notes"`
	Warning          string   `json:"warning" form:"warning"`
}

func (handler *Handler) ShowNutritionPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	day, err := parseDateParam(c.Query("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	profile, err := handler.nutrition.FetchProfile(user.ID, defaultWeightKG)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	meals, err := handler.nutrition.FetchMealsForDate(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}

	supplements, err := handler.nutrition.FetchSupplementsForDate(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load supplements")
	}

	summary, _, err := handler.nutrition.FetchSummaryForDate(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load summary")
	}

	return handler.render(c, "nutrition", fiber.Map{
		"Date":        services.DateAtLocation(day, handler.location),
		"Profile":     profile,
		"Targets":     services.TargetsForWeight(profile.WeightKG),
		"Meals":       meals,
		"Supplements": supplements,
		"Summary":     summary,
	})
}

func (handler *Handler) LogMeal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := mealPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.MealType == "" {
		return apiError(c, fiber.StatusBadRequest, "meal_type is required")
	}

	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	items := make([]services.MealItemInput, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, services.MealItemInput{
			FoodID:         item.FoodID,
			CustomFoodName: item.CustomFoodName,
			AmountG:        item.AmountG,
			AmountDisplay:  item.AmountDisplay,
		})
	}

	meal, err := handler.nutrition.LogMeal(user.ID, services.MealInput{
		Date:     day,
		MealType: payload.MealType,
		Time:     payload.Time,
		Appetite: payload.Appetite,
		HandFed:  payload.HandFed,
		Warmed:   payload.Warmed,
		Notes:    payload.Notes,
		Items:    items,
	}, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			return apiError(c, fiber.StatusBadRequest, "unknown food")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save meal")
	}

	return redirectOrJSON(c, "/nutrition", fiber.Map{"status": "ok", "id": meal.ID})
}

func (handler *Handler) LogSupplement(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := supplementPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.SupplementType == "" {
		return apiError(c, fiber.StatusBadRequest, "supplement_type is required")
	}

	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	dose, err := handler.nutrition.LogSupplement(user.ID, services.SupplementInput{
		Date:           day,
		SupplementType: payload.SupplementType,
		ProductName:    payload.ProductName,
		DoseAmount:     payload.DoseAmount,
		CalciumMG:      payload.CalciumMG,
		EPAMG:          payload.EPAMG,
		DHAMG:          payload.DHAMG,
		Notes:          payload.Notes,
	}, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save supplement")
	}

	return redirectOrJSON(c, "/nutrition", fiber.Map{"status": "ok", "id": dose.ID})
}

func (handler *Handler) UpdateWeight(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := weightPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.WeightKG <= 0 {
		return apiError(c, fiber.StatusBadRequest, "weight must be positive")
	}

	profile, err := handler.nutrition.UpdateWeight(user.ID, payload.WeightKG, payload.TargetWeightKG)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update weight")
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"profile": profile,
		"targets": services.TargetsForWeight(profile.WeightKG),
	})
}

func (handler *Handler) ShowFoodsPage(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	foods, err := handler.nutrition.FetchFoods()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load foods")
	}

	return handler.render(c, "foods", fiber.Map{
		"Foods":      foods,
		"Categories": models.FoodCategories(),
	})
}

func (handler *Handler) AddFood(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := foodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.Name == "" || payload.Category == "" {
		return apiError(c, fiber.StatusBadRequest, "name and category are required")
	}

	food := models.Food{
		Name:             payload.Name,
		Category:         payload.Category,
		Status:           payload.Status,
		CaloriesPer100G:  payload.CaloriesPer100G,
		ProteinGPer100G:  payload.ProteinGPer100G,
		FatGPer100G:      payload.FatGPer100G,
		CarbsGPer100G:    payload.CarbsGPer100G,
		EPAMGPer100G:     payload.EPAMGPer100G,
		DHAMGPer100G:     payload.DHAMGPer100G,
		CalciumMGPer100G: payload.CalciumMGPer100G,
		MaxPerDay:        payload.MaxPerDay,
		MaxPerWeek:       payload.MaxPerWeek,
		Notes:            payload.Notes,
		Warning:          payload.Warning,
	}
	if food.Status == "" {
		food.Status = models.FoodStatusApproved
	}

	if err := handler.nutrition.AddFood(&food); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save food")
	}

	return redirectOrJSON(c, "/foods", fiber.Map{"status": "ok", "id": food.ID})
}

func (handler *Handler) ShowPlanningPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	profile, err := handler.nutrition.FetchProfile(user.ID, defaultWeightKG)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	to := time.Now().In(handler.location)
	from := to.AddDate(0, 0, -6)
	summaries, err := handler.nutrition.FetchSummariesForRange(user.ID, from, to, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load summaries")
	}

	return handler.render(c, "planning", fiber.Map{
		"Profile":   profile,
		"Targets":   services.TargetsForWeight(profile.WeightKG),
		"Summaries": summaries,
	})
}

func (handler *Handler) ListFoodsAPI(c *fiber.Ctx) error {
	foods, err := handler.nutrition.FetchFoods()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load foods")
	}
	return c.JSON(fiber.Map{"foods": foods})
}

func (handler *Handler) NutritionRangeAPI(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := parseDateParam(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseDateParam(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	summaries, err := handler.nutrition.FetchSummariesForRange(user.ID, from, to, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load summaries")
	}

	return c.JSON(fiber.Map{"summaries": summaries})
}
