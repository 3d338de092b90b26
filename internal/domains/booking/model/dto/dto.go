package dto

import (
	"time"

	"rentello/internal/domains/booking/model"
	"rentello/shared/constant"
	"rentello/shared/failure"
	"rentello/shared/money"
)

type OpenDraftRequest struct {
	VehicleID int64 `json:"vehicle_id" validate:"required,gt=0"`
}

type UpdateDraftRequest struct {
	PickupDate       string `json:"pickup_date"        validate:"required,datetime=2006-01-02"`
	ReturnDate       string `json:"return_date"        validate:"required,datetime=2006-01-02"`
	PickupTime       string `json:"pickup_time"        validate:"required,datetime=15:04"`
	ReturnTime       string `json:"return_time"        validate:"required,datetime=15:04"`
	PickupLocationID int64  `json:"pickup_location_id" validate:"required,gt=0"`
	ReturnLocationID int64  `json:"return_location_id" validate:"required,gt=0"`
	Notes            string `json:"notes"              validate:"max=500"`
}

// Dates parses the request's date fields, which the validator has already
// checked for format.
func (r UpdateDraftRequest) Dates() (pickup, returnAt time.Time, err error) {
	pickup, err = time.Parse(constant.DateFormat, r.PickupDate)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid pickup date")
	}

	returnAt, err = time.Parse(constant.DateFormat, r.ReturnDate)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid return date")
	}

	return pickup, returnAt, nil
}

type BreakdownResponse struct {
	BasePrice        float64 `json:"base_price"`
	WeekendSurcharge float64 `json:"weekend_surcharge"`
	SeasonalAdjust   float64 `json:"seasonal_adjustment"`
	DiscountAmount   float64 `json:"discount_amount"`
	TaxAmount        float64 `json:"tax_amount"`
	TotalPrice       float64 `json:"total_price"`
	TotalDisplay     string  `json:"total_display"`
	TotalDays        int     `json:"total_days"`
	AverageRate      float64 `json:"average_rate"`
	IsEstimate       bool    `json:"is_estimate"`
}

type ReservationResponse struct {
	RentalID     int64   `json:"rental_id"`
	TotalAmount  float64 `json:"total_amount"`
	TotalDisplay string  `json:"total_display"`
	TotalDays    int     `json:"total_days"`
}

type DraftResponse struct {
	State            string                `json:"state"`
	Vehicle          model.VehicleSnapshot `json:"vehicle"`
	PickupDate       string                `json:"pickup_date"`
	ReturnDate       string                `json:"return_date"`
	PickupTime       string                `json:"pickup_time"`
	ReturnTime       string                `json:"return_time"`
	PickupLocationID int64                 `json:"pickup_location_id"`
	ReturnLocationID int64                 `json:"return_location_id"`
	Notes            string                `json:"notes,omitempty"`
	Revision         int64                 `json:"revision"`
	Breakdown        *BreakdownResponse    `json:"breakdown,omitempty"`
	Reservation      *ReservationResponse  `json:"reservation,omitempty"`
	FailReason       string                `json:"fail_reason,omitempty"`
}

func (r *DraftResponse) FromModel(draft model.Draft) {
	r.State = string(draft.State)
	r.Vehicle = draft.Vehicle
	r.PickupDate = draft.PickupDate.Format(constant.DateFormat)
	r.ReturnDate = draft.ReturnDate.Format(constant.DateFormat)
	r.PickupTime = draft.PickupTime
	r.ReturnTime = draft.ReturnTime
	r.PickupLocationID = draft.PickupLocationID
	r.ReturnLocationID = draft.ReturnLocationID
	r.Notes = draft.Notes
	r.Revision = draft.Revision
	r.FailReason = draft.FailReason

	if draft.Breakdown != nil {
		r.Breakdown = &BreakdownResponse{
			BasePrice:        draft.Breakdown.BasePrice,
			WeekendSurcharge: draft.Breakdown.WeekendSurcharge,
			SeasonalAdjust:   draft.Breakdown.SeasonalAdjust,
			DiscountAmount:   draft.Breakdown.DiscountAmount,
			TaxAmount:        draft.Breakdown.TaxAmount,
			TotalPrice:       draft.Breakdown.TotalPrice,
			TotalDisplay:     money.FormatPrice(draft.Breakdown.TotalPrice),
			TotalDays:        draft.Breakdown.TotalDays,
			AverageRate:      draft.Breakdown.AverageRate,
			IsEstimate:       draft.Breakdown.IsEstimate(),
		}
	}

	if draft.Reservation != nil {
		r.Reservation = &ReservationResponse{
			RentalID:     draft.Reservation.RentalID,
			TotalAmount:  draft.Reservation.TotalAmount,
			TotalDisplay: money.FormatPrice(draft.Reservation.TotalAmount),
			TotalDays:    draft.Reservation.TotalDays,
		}
	}
}
