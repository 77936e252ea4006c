package convocations

import (
	"errors"

	"club-manager/app/config"
	"club-manager/app/database"
	"club-manager/app/services"

	"github.com/gofiber/fiber/v2"
)

// GenerateMovementsAPI computes and persists one billing line per
// called-up athlete. Calling it again replaces the group's lines with a
// fresh computation.
func GenerateMovementsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	movements, err := services.GenerateMovements(db, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Convocation not found"})
		case errors.Is(err, services.ErrMissingFee):
			return c.Status(422).JSON(fiber.Map{"success": false, "error": err.Error()})
		case errors.Is(err, services.ErrInvalidPricingMode):
			return c.Status(422).JSON(fiber.Map{"success": false, "error": err.Error()})
		case errors.Is(err, database.ErrDuplicate):
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "Movements already being generated"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate movements"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"movements": movements,
	})
}

// GetMovementsAPI lists the billing lines of a group
func GetMovementsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	movements, err := database.GetMovementsByGroup(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch movements"})
	}
	return c.JSON(fiber.Map{"success": true, "movements": movements})
}
