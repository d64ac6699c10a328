// file: internals/features/dashboard/service/live_counters.go
package service

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"decofilm_backend/internals/constants"
	bookingModel "decofilm_backend/internals/features/bookings/model"
	projectModel "decofilm_backend/internals/features/projects/model"
)

// LiveCounters keeps a few headline numbers warm so the dashboard header
// doesn't hit the database on every poll. Figures may lag up to one refresh
// interval behind the tables.
type LiveCounters struct {
	mu   sync.RWMutex
	cron *cron.Cron
	db   *gorm.DB

	snapshot LiveSnapshot
}

type LiveSnapshot struct {
	PendingBookings int64     `json:"pending_bookings"`
	ActiveProjects  int64     `json:"active_projects"`
	TodayConsults   int64     `json:"today_consults"`
	RefreshedAt     time.Time `json:"refreshed_at"`
}

// StartLiveCounters refreshes the counters every 30 seconds. A nil db is
// allowed (degraded mode); the snapshot then just stays zero.
func StartLiveCounters(db *gorm.DB) *LiveCounters {
	lc := &LiveCounters{
		cron: cron.New(cron.WithSeconds()),
		db:   db,
	}
	if db != nil {
		lc.refresh()
		if _, err := lc.cron.AddFunc("*/30 * * * * *", lc.refresh); err != nil {
			log.Printf("⚠️ live counters cron not scheduled: %v", err)
		}
		lc.cron.Start()
	}
	return lc
}

func (lc *LiveCounters) Stop() {
	if lc.cron != nil {
		lc.cron.Stop()
	}
}

func (lc *LiveCounters) Snapshot() LiveSnapshot {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	return lc.snapshot
}

func (lc *LiveCounters) refresh() {
	var snap LiveSnapshot

	if err := bookingModel.ScopeAlive(lc.db.Model(&bookingModel.Booking{})).
		Where("booking_status = ?", constants.BookingStatusPending).
		Count(&snap.PendingBookings).Error; err != nil {
		log.Printf("⚠️ live counters: pending bookings: %v", err)
		return
	}

	if err := projectModel.ScopeAlive(lc.db.Model(&projectModel.Project{})).
		Where("project_status IN ?", []string{
			constants.ProjectStatusInProgress,
			constants.ProjectStatusQualityCheck,
		}).
		Count(&snap.ActiveProjects).Error; err != nil {
		log.Printf("⚠️ live counters: active projects: %v", err)
		return
	}

	if err := bookingModel.ScopeAlive(lc.db.Model(&bookingModel.Booking{})).
		Where("booking_consult_date = CURRENT_DATE").
		Count(&snap.TodayConsults).Error; err != nil {
		log.Printf("⚠️ live counters: today consults: %v", err)
		return
	}

	snap.RefreshedAt = time.Now().UTC()

	lc.mu.Lock()
	lc.snapshot = snap
	lc.mu.Unlock()
}
