package main

import (
	"errors"
	"log"
	"os"

	"club-manager/app/config"
	"club-manager/app/database"
	"club-manager/app/routes/athletes"
	"club-manager/app/routes/attendance"
	"club-manager/app/routes/auth"
	"club-manager/app/routes/convocations"
	"club-manager/app/routes/dashboard"
	"club-manager/app/routes/events"
	"club-manager/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// jsonErrorHandler turns unhandled errors into a consistent JSON shape
func jsonErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func main() {
	config.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:      "Club Manager",
		ErrorHandler: jsonErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	// Initialize database
	config.InitDB()
	db := config.GetDB()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler (daily recurrence expansion)
	services.StartScheduler(db)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup routes
	auth.SetupAuthRoutes(app)
	athletes.SetupAthletesRoutes(app)
	events.SetupEventsRoutes(app)
	convocations.SetupConvocationsRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
