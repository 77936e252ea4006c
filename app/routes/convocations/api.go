package convocations

import (
	"errors"

	"club-manager/app/config"
	"club-manager/app/database"
	"club-manager/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// AthleteEntryRequest is one called-up athlete in a convocation payload
type AthleteEntryRequest struct {
	AthleteID string `json:"athlete_id" validate:"required,uuid"`
	Races     int    `json:"races" validate:"gte=0"`
	RelayLegs int    `json:"relay_legs" validate:"gte=0"`
}

// CreateConvocationRequest is the payload for creating a group
type CreateConvocationRequest struct {
	EventID     string                `json:"event_id" validate:"required,uuid"`
	PricingMode models.PricingMode    `json:"pricing_mode" validate:"required,oneof=per_race per_relay flat"`
	RaceFee     *decimal.Decimal      `json:"race_fee,omitempty"`
	RelayFee    *decimal.Decimal      `json:"relay_fee,omitempty"`
	FlatFee     *decimal.Decimal      `json:"flat_fee,omitempty"`
	Notes       string                `json:"notes"`
	Athletes    []AthleteEntryRequest `json:"athletes" validate:"dive"`
}

// CreateConvocationAPI creates a convocation group with its call-up list.
// Fees left unset fall back to the event's default pricing fields.
func CreateConvocationAPI(c *fiber.Ctx) error {
	var req CreateConvocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := config.GetDB()
	event, err := database.GetEventByID(db, req.EventID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch event"})
	}

	group := &models.ConvocationGroup{
		EventID:     req.EventID,
		PricingMode: req.PricingMode,
		RaceFee:     req.RaceFee,
		RelayFee:    req.RelayFee,
		FlatFee:     req.FlatFee,
		Notes:       req.Notes,
		CreatedBy:   c.Locals("user_id").(string),
	}
	group.DefaultPricingFrom(event)

	for _, entry := range req.Athletes {
		group.Athletes = append(group.Athletes, &models.ConvocationAthlete{
			AthleteID: entry.AthleteID,
			Races:     entry.Races,
			RelayLegs: entry.RelayLegs,
		})
	}

	if err := database.CreateConvocationGroup(db, group); err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicate):
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "Athlete listed twice in the call-up"})
		case errors.Is(err, database.ErrForeignKey):
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Athlete not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create convocation"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "convocation": group})
}

// GetConvocationAPI returns a group with its athlete entries
func GetConvocationAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	group, err := database.GetConvocationGroupByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Convocation not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch convocation"})
	}
	return c.JSON(fiber.Map{"success": true, "convocation": group})
}

// GetConvocationsByEventAPI lists the convocation groups of an event
func GetConvocationsByEventAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	groups, err := database.GetConvocationGroupsByEvent(db, c.Params("eventId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch convocations"})
	}
	return c.JSON(fiber.Map{"success": true, "convocations": groups})
}

// DeleteConvocationAPI deletes a group; entries and movements cascade
func DeleteConvocationAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	if err := database.DeleteConvocationGroup(db, c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Convocation not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete convocation"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Convocation deleted successfully"})
}

// AddAthleteAPI adds one athlete to the call-up list
func AddAthleteAPI(c *fiber.Ctx) error {
	var req AthleteEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	entry := &models.ConvocationAthlete{
		GroupID:   c.Params("id"),
		AthleteID: req.AthleteID,
		Races:     req.Races,
		RelayLegs: req.RelayLegs,
	}

	db := config.GetDB()
	if err := database.AddConvocationAthlete(db, entry); err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicate):
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "Athlete already called up in this group"})
		case errors.Is(err, database.ErrForeignKey):
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Convocation or athlete not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to add athlete"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "entry": entry})
}

// UpdateAthleteAPI updates counts and flags of one call-up entry
func UpdateAthleteAPI(c *fiber.Ctx) error {
	type UpdateAthleteRequest struct {
		Races     int  `json:"races" validate:"gte=0"`
		RelayLegs int  `json:"relay_legs" validate:"gte=0"`
		Confirmed bool `json:"confirmed"`
		Present   bool `json:"present"`
	}

	var req UpdateAthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	entry := &models.ConvocationAthlete{
		GroupID:   c.Params("id"),
		AthleteID: c.Params("athleteId"),
		Races:     req.Races,
		RelayLegs: req.RelayLegs,
		Confirmed: req.Confirmed,
		Present:   req.Present,
	}

	db := config.GetDB()
	if err := database.UpdateConvocationAthlete(db, entry); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Call-up entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update athlete"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Call-up entry updated"})
}

// RemoveAthleteAPI removes one athlete from the call-up list
func RemoveAthleteAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	if err := database.RemoveConvocationAthlete(db, c.Params("id"), c.Params("athleteId")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Call-up entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to remove athlete"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Athlete removed from call-up"})
}
