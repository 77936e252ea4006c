package attendance

import (
	"errors"
	"time"

	"club-manager/app/config"
	"club-manager/app/database"
	"club-manager/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AttendanceRequest is one member's attendance mark for an event
type AttendanceRequest struct {
	EventID   string                  `json:"event_id" validate:"required,uuid"`
	UserID    string                  `json:"user_id" validate:"required,uuid"`
	Status    models.AttendanceStatus `json:"status" validate:"required,oneof=present absent justified"`
	ArrivedAt *time.Time              `json:"arrived_at,omitempty"`
	Notes     string                  `json:"notes"`
}

func (r *AttendanceRequest) toModel(markedBy string) *models.Attendance {
	return &models.Attendance{
		EventID:   r.EventID,
		UserID:    r.UserID,
		Status:    r.Status,
		ArrivedAt: r.ArrivedAt,
		Notes:     r.Notes,
		MarkedBy:  &markedBy,
	}
}

// GetAttendanceByEventAPI returns the attendance sheet of an event
func GetAttendanceByEventAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	records, err := database.GetAttendanceByEvent(db, c.Params("eventId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch attendance"})
	}
	return c.JSON(fiber.Map{"success": true, "attendance": records})
}

// CreateOrUpdateAttendanceAPI saves a single attendance mark. Marking the
// same member twice for one event updates the existing record instead of
// duplicating it.
func CreateOrUpdateAttendanceAPI(c *fiber.Ctx) error {
	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	record := req.toModel(c.Locals("user_id").(string))

	db := config.GetDB()
	if err := database.CreateOrUpdateAttendance(db, record); err != nil {
		if errors.Is(err, database.ErrForeignKey) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event or member not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save attendance"})
	}

	return c.JSON(fiber.Map{"success": true, "attendance": record})
}

// BatchUpdateAttendanceAPI saves a whole attendance sheet in one call
func BatchUpdateAttendanceAPI(c *fiber.Ctx) error {
	type BatchRequest struct {
		Records []AttendanceRequest `json:"records" validate:"required,min=1,dive"`
	}

	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	markedBy := c.Locals("user_id").(string)
	db := config.GetDB()

	saved := 0
	for _, r := range req.Records {
		record := r.toModel(markedBy)
		if err := database.CreateOrUpdateAttendance(db, record); err != nil {
			if errors.Is(err, database.ErrForeignKey) {
				return c.Status(404).JSON(fiber.Map{
					"success": false,
					"error":   "Event or member not found",
					"saved":   saved,
				})
			}
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to save attendance",
				"saved":   saved,
			})
		}
		saved++
	}

	return c.JSON(fiber.Map{"success": true, "saved": saved})
}

// GetAttendanceStatsAPI returns per-status counts for an event
func GetAttendanceStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	stats, err := database.GetAttendanceStatsByEvent(db, c.Params("eventId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch stats"})
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

// GetMemberAttendanceReportAPI returns a member's attendance history
func GetMemberAttendanceReportAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	db := config.GetDB()
	report, err := database.GetMemberAttendanceReport(db, c.Params("userId"), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch report"})
	}
	return c.JSON(fiber.Map{"success": true, "report": report})
}
