package dashboard

import (
	"time"

	"club-manager/app/config"
	"club-manager/app/database"
	"club-manager/app/models"
	"club-manager/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetDashboardStatsAPI)
	api.Get("/upcoming", GetUpcomingEventsAPI)
}

// GetDashboardStatsAPI returns the headline club numbers
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch stats"})
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

// GetUpcomingEventsAPI returns the next few scheduled events
func GetUpcomingEventsAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)

	today := models.CivilDateOf(time.Now())
	db := config.GetDB()
	events, err := database.GetEvents(db, database.EventFilters{From: &today})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch events"})
	}

	var upcoming []*models.Event
	for _, e := range events {
		if e.Status == models.Cancelled {
			continue
		}
		upcoming = append(upcoming, e)
		if len(upcoming) >= limit {
			break
		}
	}

	return c.JSON(fiber.Map{"success": true, "events": upcoming})
}
