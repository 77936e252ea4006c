package events

import (
	"errors"
	"time"

	"club-manager/app/config"
	"club-manager/app/database"
	"club-manager/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// EventRequest is the payload for creating or updating an event
type EventRequest struct {
	Title              string            `json:"title" validate:"required"`
	Description        string            `json:"description"`
	Type               models.EventType  `json:"type" validate:"required,oneof=training race internal meeting"`
	Location           string            `json:"location"`
	StartsAt           time.Time         `json:"starts_at" validate:"required"`
	EndsAt             *time.Time        `json:"ends_at,omitempty"`
	IsRecurring        bool              `json:"is_recurring"`
	RecurrenceStart    *models.CivilDate `json:"recurrence_start,omitempty"`
	RecurrenceEnd      *models.CivilDate `json:"recurrence_end,omitempty"`
	RecurrenceWeekdays []int             `json:"recurrence_weekdays,omitempty" validate:"dive,gte=0,lte=6"`
	RaceFee            *decimal.Decimal  `json:"race_fee,omitempty"`
	RelayFee           *decimal.Decimal  `json:"relay_fee,omitempty"`
	FlatFee            *decimal.Decimal  `json:"flat_fee,omitempty"`
}

func (r *EventRequest) toModel() *models.Event {
	return &models.Event{
		Title:              r.Title,
		Description:        r.Description,
		Type:               r.Type,
		Location:           r.Location,
		StartsAt:           r.StartsAt,
		EndsAt:             r.EndsAt,
		IsRecurring:        r.IsRecurring,
		RecurrenceStart:    r.RecurrenceStart,
		RecurrenceEnd:      r.RecurrenceEnd,
		RecurrenceWeekdays: r.RecurrenceWeekdays,
		RaceFee:            r.RaceFee,
		RelayFee:           r.RelayFee,
		FlatFee:            r.FlatFee,
	}
}

// GetEventsAPI returns a list of events with optional filters
func GetEventsAPI(c *fiber.Ctx) error {
	filters := database.EventFilters{
		Type:       models.EventType(c.Query("type")),
		Status:     models.EventStatus(c.Query("status")),
		ParentOnly: c.Query("parents_only") == "true",
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid from date"})
		}
		d := models.CivilDateOf(t)
		filters.From = &d
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid to date"})
		}
		d := models.CivilDateOf(t)
		filters.To = &d
	}

	db := config.GetDB()
	events, err := database.GetEvents(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch events",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
	})
}

// GetEventAPI returns a single event
func GetEventAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	event, err := database.GetEventByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch event"})
	}
	return c.JSON(fiber.Map{"success": true, "event": event})
}

// GetEventChildrenAPI returns the generated occurrences of a recurring event
func GetEventChildrenAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	children, err := database.GetChildEvents(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch occurrences"})
	}
	return c.JSON(fiber.Map{"success": true, "events": children})
}

// CreateEventAPI creates a new event
func CreateEventAPI(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	if req.IsRecurring && (req.RecurrenceStart == nil || req.RecurrenceEnd == nil) {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Recurring events need recurrence_start and recurrence_end",
		})
	}

	event := req.toModel()
	event.Status = models.Draft
	event.CreatedBy = c.Locals("user_id").(string)

	db := config.GetDB()
	if err := database.CreateEvent(db, event); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create event",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"event":   event,
	})
}

// UpdateEventAPI updates an existing event
func UpdateEventAPI(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	event := req.toModel()
	event.ID = c.Params("id")

	db := config.GetDB()
	if err := database.UpdateEvent(db, event); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update event",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event updated successfully",
	})
}

// UpdateEventStatusAPI moves an event along its lifecycle
func UpdateEventStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status models.EventStatus `json:"status" validate:"required,oneof=draft scheduled in_progress completed cancelled"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := config.GetDB()
	event, err := database.GetEventByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch event"})
	}

	if !event.Status.CanTransitionTo(req.Status) {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   "Cannot move event from " + string(event.Status) + " to " + string(req.Status),
		})
	}

	if err := database.UpdateEventStatus(db, event.ID, req.Status); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update status"})
	}

	return c.JSON(fiber.Map{"success": true, "status": req.Status})
}

// DeleteEventAPI deletes an event together with its children, convocations
// and attendance records
func DeleteEventAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	if err := database.DeleteEvent(db, c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete event",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event deleted successfully",
	})
}
