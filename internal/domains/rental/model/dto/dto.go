package dto

import (
	"rentello/infras/rentello"
	"rentello/shared/money"
)

type UpdateStatusRequest struct {
	StatusID int `json:"status_id" validate:"required,gte=1,lte=5"`
}

type RentalResponse struct {
	RentalID       int64   `json:"rental_id"`
	VehicleLabel   string  `json:"vehicle_label"`
	Registration   string  `json:"registration"`
	PickupDate     string  `json:"pickup_date"`
	ReturnDate     string  `json:"return_date"`
	PickupLocation string  `json:"pickup_location,omitempty"`
	ReturnLocation string  `json:"return_location,omitempty"`
	TotalAmount    float64 `json:"total_amount"`
	TotalDisplay   string  `json:"total_display"`
	StatusID       int64   `json:"status_id"`
	StatusName     string  `json:"status_name"`
	Notes          string  `json:"notes,omitempty"`
}

func (r *RentalResponse) FromRemote(rental rentello.Rental) {
	r.RentalID = rental.RentalID
	r.VehicleLabel = rental.Vehicle.Model.Brand.BrandName + " " + rental.Vehicle.Model.ModelName
	r.Registration = rental.Vehicle.VehicleRegistration
	r.PickupDate = rental.PlannedPickupDate
	r.ReturnDate = rental.PlannedReturnDate
	r.PickupLocation = rental.PickupLocation.LocationName
	r.ReturnLocation = rental.ReturnLocation.LocationName
	r.TotalAmount = rental.TotalAmount
	r.TotalDisplay = money.FormatPrice(rental.TotalAmount)
	r.StatusID = rental.RentalStatus.StatusID
	r.StatusName = rental.RentalStatus.StatusName
	r.Notes = rental.Notes
}
