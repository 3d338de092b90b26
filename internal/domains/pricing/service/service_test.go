package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentello/infras/otel/mocks"
	"rentello/infras/rentello"
	rentelloMocks "rentello/infras/rentello/mocks"
	"rentello/internal/domains/pricing/model"
	"rentello/internal/domains/pricing/service"
)

// 2026-03-02 is a Monday.
var (
	monday    = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	friday    = time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	nextMon   = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
)

func TestLocal(t *testing.T) {
	t.Run("weekday rental has no surcharge", func(t *testing.T) {
		breakdown, err := service.Local(100, monday, wednesday)

		assert.NoError(t, err)
		assert.Equal(t, 2, breakdown.TotalDays)
		assert.Equal(t, 200.0, breakdown.BasePrice)
		assert.Equal(t, 0.0, breakdown.WeekendSurcharge)
		assert.Equal(t, 36.0, breakdown.TaxAmount)
		assert.Equal(t, 236.0, breakdown.TotalPrice)
		assert.Equal(t, 118.0, breakdown.AverageRate)
		assert.True(t, breakdown.IsEstimate())
	})

	t.Run("weekend days in the window each add a surcharge", func(t *testing.T) {
		breakdown, err := service.Local(100, friday, nextMon)

		assert.NoError(t, err)
		assert.Equal(t, 3, breakdown.TotalDays)
		assert.Equal(t, 300.0, breakdown.BasePrice)
		assert.Equal(t, 40.0, breakdown.WeekendSurcharge)
		assert.Equal(t, 61.2, breakdown.TaxAmount)
		assert.Equal(t, 401.2, breakdown.TotalPrice)
	})

	t.Run("total is the sum of its parts", func(t *testing.T) {
		breakdown, err := service.Local(137.5, friday, nextMon.AddDate(0, 0, 4))

		assert.NoError(t, err)
		assert.InDelta(t,
			breakdown.BasePrice+breakdown.WeekendSurcharge+breakdown.TaxAmount,
			breakdown.TotalPrice, 0.011)
		assert.Zero(t, breakdown.SeasonalAdjust)
		assert.Zero(t, breakdown.DiscountAmount)
	})

	t.Run("rejects inverted range and bad rate", func(t *testing.T) {
		_, err := service.Local(100, wednesday, monday)
		assert.ErrorIs(t, err, service.ErrInvalidRange)

		_, err = service.Local(100, monday, monday)
		assert.ErrorIs(t, err, service.ErrInvalidRange)

		_, err = service.Local(0, monday, wednesday)
		assert.ErrorIs(t, err, service.ErrInvalidRate)
	})
}

func TestDayCount(t *testing.T) {
	assert.Equal(t, 2, service.DayCount(monday, wednesday))
	assert.Equal(t, 3, service.DayCount(monday, wednesday.Add(4*time.Hour)))
	assert.Equal(t, 1, service.DayCount(monday, monday.Add(2*time.Hour)))
}

func TestWeekendDays(t *testing.T) {
	assert.Equal(t, 0, service.WeekendDays(monday, wednesday))
	assert.Equal(t, 2, service.WeekendDays(friday, nextMon))
	// Return-day is exclusive: ending on Saturday charges no weekend day.
	saturday := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, service.WeekendDays(friday, saturday))
}

func TestEstimator_Estimate(t *testing.T) {
	newEstimator := func(t *testing.T) (service.Estimator, *rentelloMocks.MockClient) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockRemote := rentelloMocks.NewMockClient(ctrl)

		return service.New(mockRemote, mocks.NewOtel()), mockRemote
	}

	t.Run("remote breakdown is itemized", func(t *testing.T) {
		est, mockRemote := newEstimator(t)

		mockRemote.EXPECT().
			PricingBreakdown(gomock.Any(), "tok", int64(12), "2026-03-06", "2026-03-09").
			Return(rentello.PricingBreakdown{
				BasePrice:        300,
				WeekendSurcharge: 40,
				TaxAmount:        61.2,
				TotalPrice:       401.2,
				TotalDays:        3,
				AverageRate:      133.73,
			}, nil)

		breakdown, err := est.Estimate(context.Background(), "tok", 12, 100, friday, nextMon)

		assert.NoError(t, err)
		assert.Equal(t, model.SourceRemote, breakdown.Source)
		assert.Equal(t, 300.0, breakdown.BasePrice)
		assert.Equal(t, 40.0, breakdown.WeekendSurcharge)
		assert.Equal(t, 401.2, breakdown.TotalPrice)
		assert.False(t, breakdown.IsEstimate())
	})

	t.Run("remote adjustments are carried as supplied", func(t *testing.T) {
		est, mockRemote := newEstimator(t)

		mockRemote.EXPECT().
			PricingBreakdown(gomock.Any(), "tok", int64(12), gomock.Any(), gomock.Any()).
			Return(rentello.PricingBreakdown{
				BasePrice:          300,
				WeekendSurcharge:   40,
				SeasonalAdjustment: 30,
				DiscountAmount:     17,
				TaxAmount:          63.54,
				TotalPrice:         416.54,
				TotalDays:          3,
				AverageRate:        138.85,
			}, nil)

		breakdown, err := est.Estimate(context.Background(), "tok", 12, 100, friday, nextMon)

		assert.NoError(t, err)
		assert.Equal(t, 30.0, breakdown.SeasonalAdjust)
		assert.Equal(t, 17.0, breakdown.DiscountAmount)
		assert.InDelta(t, breakdown.TotalPrice,
			breakdown.BasePrice+breakdown.WeekendSurcharge+breakdown.SeasonalAdjust-
				breakdown.DiscountAmount+breakdown.TaxAmount, 0.001)
	})

	t.Run("sparse remote response is reconstructed", func(t *testing.T) {
		est, mockRemote := newEstimator(t)

		mockRemote.EXPECT().
			PricingBreakdown(gomock.Any(), "tok", int64(12), gomock.Any(), gomock.Any()).
			Return(rentello.PricingBreakdown{TotalPrice: 500}, nil)

		breakdown, err := est.Estimate(context.Background(), "tok", 12, 100, friday, nextMon)

		assert.NoError(t, err)
		assert.Equal(t, 3, breakdown.TotalDays)
		assert.Equal(t, 75.0, breakdown.TaxAmount)
		assert.Equal(t, 425.0, breakdown.BasePrice)
		assert.InDelta(t, 166.67, breakdown.AverageRate, 0.001)
	})

	t.Run("remote failure falls back to local estimate", func(t *testing.T) {
		est, mockRemote := newEstimator(t)

		mockRemote.EXPECT().
			PricingBreakdown(gomock.Any(), "tok", int64(12), gomock.Any(), gomock.Any()).
			Return(rentello.PricingBreakdown{}, errors.New("connection refused"))

		breakdown, err := est.Estimate(context.Background(), "tok", 12, 100, monday, wednesday)

		assert.NoError(t, err)
		assert.True(t, breakdown.IsEstimate())
		assert.Equal(t, 236.0, breakdown.TotalPrice)
	})

	t.Run("remote rejection is not swallowed by the fallback", func(t *testing.T) {
		est, mockRemote := newEstimator(t)

		mockRemote.EXPECT().
			PricingBreakdown(gomock.Any(), "tok", int64(12), gomock.Any(), gomock.Any()).
			Return(rentello.PricingBreakdown{}, rentello.ErrUnauthorized)

		_, err := est.Estimate(context.Background(), "tok", 12, 100, monday, wednesday)

		assert.ErrorIs(t, err, rentello.ErrUnauthorized)
	})

	t.Run("invalid inputs never reach the remote", func(t *testing.T) {
		est, _ := newEstimator(t)

		_, err := est.Estimate(context.Background(), "tok", 12, 100, wednesday, monday)
		assert.ErrorIs(t, err, service.ErrInvalidRange)

		_, err = est.Estimate(context.Background(), "tok", 12, -5, monday, wednesday)
		assert.ErrorIs(t, err, service.ErrInvalidRate)
	})
}
