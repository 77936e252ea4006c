package services

import (
	"database/sql"
	"log"
	"time"

	"club-manager/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 2:10 AM
			if now.Hour() == 2 && now.Minute() == 10 {
				log.Println("Triggering scheduled tasks [02:10]...")

				// Materialize occurrences of still-open recurring events
				if err := ExpandOpenRecurrences(db); err != nil {
					log.Printf("Error expanding recurring events: %v", err)
				}
			}
		}
	}()
}

// ExpandOpenRecurrences runs the expansion for every recurring parent
// whose window has not closed. Expansion is idempotent, so re-running
// daily only materializes occurrences added by widened windows or new
// weekdays.
func ExpandOpenRecurrences(db *sql.DB) error {
	parents, err := database.GetOpenRecurringEvents(db)
	if err != nil {
		return err
	}

	for _, parent := range parents {
		result, err := ExpandRecurringEvent(db, parent.ID)
		if err != nil {
			log.Printf("Failed to expand recurring event %s (%s): %v", parent.ID, parent.Title, err)
			continue
		}
		if result.Created > 0 {
			log.Printf("Scheduler created %d occurrences for %s", result.Created, parent.Title)
		}
	}
	return nil
}
