package events

import (
	"errors"

	"club-manager/app/config"
	"club-manager/app/database"
	"club-manager/app/services"

	"github.com/gofiber/fiber/v2"
)

// ExpandEventAPI materializes the occurrences of a recurring event.
// Safe to call again after widening the recurrence window: existing
// occurrences are kept, only missing dates are created.
func ExpandEventAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	result, err := services.ExpandRecurringEvent(db, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		case errors.Is(err, services.ErrNotRecurring):
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Event is not recurring"})
		case errors.Is(err, services.ErrInvalidWeekday):
			return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
		case errors.Is(err, database.ErrDuplicate):
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "Occurrences already being generated"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to expand event"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"created": result.Created,
		"events":  result.Children,
	})
}
