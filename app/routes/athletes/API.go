package athletes

import (
	"errors"
	"strconv"

	"club-manager/app/config"
	"club-manager/app/database"
	"club-manager/app/models"
	"club-manager/app/routes/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetAthletesAPI lists athletes with optional filters
func GetAthletesAPI(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	filters := database.AthleteFilters{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		AgeGroup:  c.Query("age_group"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Limit:     limit,
		Offset:    offset,
	}

	db := config.GetDB()
	athletes, err := database.GetAthletes(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch athletes"})
	}
	return c.JSON(fiber.Map{"success": true, "athletes": athletes})
}

// GetAthleteAPI returns a single athlete profile
func GetAthleteAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	user, err := database.GetUserByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Athlete not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch athlete"})
	}

	roles, err := database.GetUserRoles(db, user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch roles"})
	}
	user.Roles = roles

	return c.JSON(fiber.Map{"success": true, "athlete": user})
}

// GetAthleteMovementsAPI returns an athlete's billing lines across all
// events, newest first
func GetAthleteMovementsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	movements, err := database.GetMovementsByAthlete(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch movements"})
	}
	return c.JSON(fiber.Map{"success": true, "movements": movements})
}

// AthleteRequest is the payload for creating or updating an athlete
type AthleteRequest struct {
	Email     string            `json:"email" validate:"required,email"`
	Password  string            `json:"password,omitempty"`
	FirstName string            `json:"first_name" validate:"required"`
	LastName  string            `json:"last_name" validate:"required"`
	Phone     string            `json:"phone"`
	BirthDate *models.CivilDate `json:"birth_date,omitempty"`
	AgeGroup  string            `json:"age_group"`
}

// CreateAthleteAPI registers a new club athlete
func CreateAthleteAPI(c *fiber.Ctx) error {
	var req AthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Password must be at least 8 characters"})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		AgeGroup:  req.AgeGroup,
	}

	db := config.GetDB()
	if err := database.CreateUser(db, user, []string{models.RoleAthlete}); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "Email already registered"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create athlete"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "athlete": user})
}

// UpdateAthleteAPI updates an athlete profile
func UpdateAthleteAPI(c *fiber.Ctx) error {
	var req AthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := config.GetDB()
	user, err := database.GetUserByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Athlete not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch athlete"})
	}

	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	user.BirthDate = req.BirthDate
	user.AgeGroup = req.AgeGroup

	if err := database.UpdateUser(db, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "Email already registered"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update athlete"})
	}

	return c.JSON(fiber.Map{"success": true, "athlete": user})
}

// DeactivateAthleteAPI disables an athlete account, keeping its history
func DeactivateAthleteAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	if err := database.DeactivateUser(db, c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Athlete not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to deactivate athlete"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Athlete deactivated"})
}
