package model

import (
	"time"

	pricingModel "rentello/internal/domains/pricing/model"
	"rentello/shared/constant"
)

// State is a phase in the booking workflow. The workflow is strictly ordered:
// a draft is configured, previewed, confirmed, then submitted exactly once,
// ending in success or failure.
type State string

const (
	StateIdle        State = "idle"
	StateConfiguring State = "configuring"
	StatePreviewing  State = "previewing"
	StateConfirming  State = "confirming"
	StateSubmitting  State = "submitting"
	StateSucceeded   State = "succeeded"
	StateFailed      State = "failed"
)

// VehicleSnapshot pins the vehicle the draft was opened for. The label and
// rate are captured at open time so the summary stays stable even if the
// backend listing changes mid-workflow.
type VehicleSnapshot struct {
	VehicleID    int64   `json:"vehicle_id"`
	Label        string  `json:"label"`
	Registration string  `json:"registration"`
	DailyRate    float64 `json:"daily_rate"`
}

// Reservation is the outcome of a successful submission.
type Reservation struct {
	RentalID    int64   `json:"rental_id"`
	TotalAmount float64 `json:"total_amount"`
	TotalDays   int     `json:"total_days"`
}

// Draft is the single in-progress booking a session may hold. Revision counts
// edits; a pricing preview computed for an older revision is discarded rather
// than shown against newer dates.
type Draft struct {
	State   State           `json:"state"`
	Vehicle VehicleSnapshot `json:"vehicle"`

	PickupDate time.Time `json:"pickup_date"`
	ReturnDate time.Time `json:"return_date"`
	PickupTime string    `json:"pickup_time"`
	ReturnTime string    `json:"return_time"`

	PickupLocationID int64  `json:"pickup_location_id"`
	ReturnLocationID int64  `json:"return_location_id"`
	Notes            string `json:"notes,omitempty"`

	Revision  int64                   `json:"revision"`
	Breakdown *pricingModel.Breakdown `json:"breakdown,omitempty"`

	Reservation *Reservation `json:"reservation,omitempty"`
	FailReason  string       `json:"fail_reason,omitempty"`
}

// PickupAt combines the pickup date and time into a single instant.
func (d Draft) PickupAt() time.Time {
	return combine(d.PickupDate, d.PickupTime)
}

// ReturnAt combines the return date and time into a single instant.
func (d Draft) ReturnAt() time.Time {
	return combine(d.ReturnDate, d.ReturnTime)
}

func combine(date time.Time, clock string) time.Time {
	t, err := time.Parse(constant.TimeFormat, clock)
	if err != nil {
		return date
	}

	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}
