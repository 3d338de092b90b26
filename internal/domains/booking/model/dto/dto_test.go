package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rentello/internal/domains/booking/model"
	"rentello/internal/domains/booking/model/dto"
	pricingModel "rentello/internal/domains/pricing/model"
)

func TestDraftResponse_FromModel(t *testing.T) {
	pickup := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	draft := model.Draft{
		State: model.StatePreviewing,
		Vehicle: model.VehicleSnapshot{
			VehicleID: 12,
			Label:     "Toyota Corolla",
			DailyRate: 100,
		},
		PickupDate: pickup,
		ReturnDate: pickup.AddDate(0, 0, 3),
		PickupTime: "10:00",
		ReturnTime: "18:00",
		Revision:   2,
		Breakdown: &pricingModel.Breakdown{
			BasePrice:  300,
			TaxAmount:  61.2,
			TotalPrice: 401.2,
			TotalDays:  3,
			Source:     pricingModel.SourceLocal,
		},
	}

	res := dto.DraftResponse{}
	res.FromModel(draft)

	assert.Equal(t, "previewing", res.State)
	assert.Equal(t, "2026-03-06", res.PickupDate)
	assert.Equal(t, "2026-03-09", res.ReturnDate)
	assert.Equal(t, int64(2), res.Revision)
	assert.NotNil(t, res.Breakdown)
	assert.Equal(t, "$401.20", res.Breakdown.TotalDisplay)
	assert.True(t, res.Breakdown.IsEstimate)
	assert.Nil(t, res.Reservation)
}

func TestDraftResponse_FromModel_Reservation(t *testing.T) {
	draft := model.Draft{
		State:      model.StateSucceeded,
		PickupDate: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Reservation: &model.Reservation{
			RentalID:    501,
			TotalAmount: 1200.65,
			TotalDays:   3,
		},
	}

	res := dto.DraftResponse{}
	res.FromModel(draft)

	assert.Equal(t, "succeeded", res.State)
	assert.Equal(t, "$1,200.65", res.Reservation.TotalDisplay)
}

func TestDraft_PickupAt(t *testing.T) {
	draft := model.Draft{
		PickupDate: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		PickupTime: "10:30",
	}

	at := draft.PickupAt()

	assert.Equal(t, 10, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, 6, at.Day())
}
