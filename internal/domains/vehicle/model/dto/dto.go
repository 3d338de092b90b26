package dto

import (
	"rentello/infras/rentello"
	"rentello/shared/money"
)

type BrowseRequest struct {
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`
}

type VehicleResponse struct {
	VehicleID    int64   `json:"vehicle_id"`
	Label        string  `json:"label"`
	Year         int     `json:"year,omitempty"`
	Registration string  `json:"registration"`
	Mileage      int64   `json:"mileage"`
	DailyRate    float64 `json:"daily_rate"`
	RateDisplay  string  `json:"rate_display"`
	Description  string  `json:"description,omitempty"`
	Location     string  `json:"location,omitempty"`
	Available    bool    `json:"available"`
}

func (r *VehicleResponse) FromRemote(v rentello.Vehicle) {
	r.VehicleID = v.VehicleID
	r.Label = v.Model.Brand.BrandName + " " + v.Model.ModelName
	r.Year = v.Model.Year
	r.Registration = v.VehicleRegistration
	r.Mileage = v.Mileage
	r.DailyRate = v.DailyRentalRate
	r.RateDisplay = money.FormatPrice(v.DailyRentalRate)
	r.Description = v.VehicleDescription
	r.Location = v.CurrentLocation.LocationName
	r.Available = v.CurrentStatus.IsAvailableForRent
}

type LocationResponse struct {
	LocationID int64  `json:"location_id"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
}

func (r *LocationResponse) FromRemote(l rentello.Location) {
	r.LocationID = l.LocationID
	r.Name = l.LocationName
	r.Address = l.Address
}
