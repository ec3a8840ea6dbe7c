package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"fintrack/config"
	"fintrack/controllers/auth"
	"fintrack/controllers/entities"
	"fintrack/controllers/helpers"
	"fintrack/models"
)

const analyticsCacheTTL = 5 * time.Minute

// GetAnalytics aggregates the ledger by category and by month. The result is
// served from the cache when possible; every ledger mutation invalidates the
// owner's entry, so a hit is never stale.
func GetAnalytics(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	key := models.AnalyticsCacheKey(CurrentUser.ID)

	var analytics entities.AnalyticsEntity
	if config.Redis != nil && config.Redis.GetKey(key, &analytics) == nil {
		return c.Status(200).JSON(analytics)
	}

	by_category, err := models.ExpensesByCategory(CurrentUser.ID)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	by_date, err := models.MonthlyTotals(CurrentUser.ID)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	analytics = entities.AnalyticsEntity{
		ByCategory: by_category,
		ByDate:     by_date,
	}

	if config.Redis != nil {
		if err := config.Redis.SetKey(key, analytics, analyticsCacheTTL); err != nil {
			config.Logger.Warnf("analytics cache write failed for user %d: %v", CurrentUser.ID, err)
		}
	}

	return c.Status(200).JSON(analytics)
}
