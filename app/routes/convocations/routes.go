package convocations

import (
	"club-manager/app/models"
	"club-manager/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupConvocationsRoutes sets up convocation routes
func SetupConvocationsRoutes(app *fiber.App) {
	api := app.Group("/api/convocations")
	api.Use(auth.AuthMiddleware)

	api.Get("/event/:eventId", GetConvocationsByEventAPI)
	api.Get("/:id", GetConvocationAPI)
	api.Get("/:id/movements", GetMovementsAPI)

	staff := auth.RoleMiddleware(models.RoleAdmin, models.RoleCoach)
	api.Post("/", staff, CreateConvocationAPI)
	api.Delete("/:id", staff, DeleteConvocationAPI)
	api.Post("/:id/athletes", staff, AddAthleteAPI)
	api.Put("/:id/athletes/:athleteId", staff, UpdateAthleteAPI)
	api.Delete("/:id/athletes/:athleteId", staff, RemoveAthleteAPI)
	api.Post("/:id/movements", staff, GenerateMovementsAPI)
}
