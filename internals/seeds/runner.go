// file: internals/seeds/runner.go
package seeds

import (
	"log"
	"time"

	"gorm.io/gorm"

	bookingModel "decofilm_backend/internals/features/bookings/model"
)

// RunSampleData loads the demo dataset once. It keys off the bookings table:
// a non-empty table means a real (or already seeded) instance, so nothing runs.
func RunSampleData(db *gorm.DB) {
	var count int64
	if err := db.Model(&bookingModel.Booking{}).Count(&count).Error; err != nil {
		log.Printf("⚠️ sample seed skipped: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ sample seed skipped: bookings table not empty")
		return
	}

	now := time.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sampleBookings(now)).Error; err != nil {
			return err
		}
		if err := tx.Create(sampleCustomers()).Error; err != nil {
			return err
		}
		if err := tx.Create(sampleProjects(now)).Error; err != nil {
			return err
		}
		if err := tx.Create(samplePortfolio()).Error; err != nil {
			return err
		}
		if err := tx.Create(sampleEvents(now)).Error; err != nil {
			return err
		}
		return tx.Create(sampleTasks(now)).Error
	})
	if err != nil {
		log.Printf("⚠️ sample seed failed: %v", err)
		return
	}
	log.Println("✅ sample data seeded")
}
