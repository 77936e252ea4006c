package athletes

import (
	"club-manager/app/models"
	"club-manager/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAthletesRoutes sets up member management routes
func SetupAthletesRoutes(app *fiber.App) {
	api := app.Group("/api/athletes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAthletesAPI)
	api.Get("/:id", GetAthleteAPI)
	api.Get("/:id/movements", GetAthleteMovementsAPI)

	staff := auth.RoleMiddleware(models.RoleAdmin, models.RoleCoach)
	api.Post("/", staff, CreateAthleteAPI)
	api.Put("/:id", staff, UpdateAthleteAPI)
	api.Delete("/:id", staff, DeactivateAthleteAPI)
}
