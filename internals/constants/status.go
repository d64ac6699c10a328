package constants

// Booking lifecycle
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// Payment state on a booking's sales fields
const (
	PaymentStatusUnpaid    = "unpaid"
	PaymentStatusPartial   = "partial"
	PaymentStatusCompleted = "completed"
)

// Quote lifecycle
const (
	QuoteStatusRequested = "quote_requested"
	QuoteStatusSent      = "quote_sent"
	QuoteStatusConfirmed = "confirmed"
	QuoteStatusRejected  = "rejected"
)

// Project lifecycle (derived from progress, see projects/service)
const (
	ProjectStatusScheduled    = "scheduled"
	ProjectStatusInProgress   = "in_progress"
	ProjectStatusQualityCheck = "quality_check"
	ProjectStatusCompleted    = "completed"
)

// Customer relationship state
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusVIP      = "vip"
)

// Building types accepted on intake forms
const (
	BuildingTypeApartment    = "apartment"
	BuildingTypeVilla        = "villa"
	BuildingTypeHouse        = "house"
	BuildingTypeOfficetel    = "officetel"
	BuildingTypePhoneConsult = "phone_consult"
)

// Generic calendar event kinds
const (
	EventTypeB2B             = "b2b"
	EventTypePersonalSupport = "personal_support"
	EventTypeWorkSchedule    = "work_schedule"
	EventTypeCompanyEvent    = "company_event"
	EventTypeMeeting         = "meeting"
	EventTypeOther           = "other"
)

// Priorities shared by events and tasks
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)
