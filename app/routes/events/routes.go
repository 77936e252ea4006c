package events

import (
	"club-manager/app/models"
	"club-manager/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupEventsRoutes sets up events routes
func SetupEventsRoutes(app *fiber.App) {
	api := app.Group("/api/events")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetEventsAPI)
	api.Get("/:id", GetEventAPI)
	api.Get("/:id/children", GetEventChildrenAPI)

	// Mutations are staff-only
	staff := auth.RoleMiddleware(models.RoleAdmin, models.RoleCoach)
	api.Post("/", staff, CreateEventAPI)
	api.Put("/:id", staff, UpdateEventAPI)
	api.Put("/:id/status", staff, UpdateEventStatusAPI)
	api.Post("/:id/expand", staff, ExpandEventAPI)
	api.Delete("/:id", staff, DeleteEventAPI)
}
