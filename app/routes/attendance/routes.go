package attendance

import (
	"club-manager/app/models"
	"club-manager/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Get("/event/:eventId", GetAttendanceByEventAPI)
	api.Get("/stats/:eventId", GetAttendanceStatsAPI)
	api.Get("/member-report/:userId", GetMemberAttendanceReportAPI)

	staff := auth.RoleMiddleware(models.RoleAdmin, models.RoleCoach)
	api.Post("/", staff, BatchUpdateAttendanceAPI)
	api.Post("/single", staff, CreateOrUpdateAttendanceAPI)
}
