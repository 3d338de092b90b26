package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"rentello/infras/otel"
	"rentello/infras/rentello"
	"rentello/internal/domains/pricing/model"
	"rentello/shared/constant"
)

var (
	ErrInvalidRange = errors.New("return must be after pickup")
	ErrInvalidRate  = errors.New("daily rate must be positive")
)

const (
	// weekendRate is the per-weekend-day surcharge applied as a fraction of
	// the daily rate when estimating locally.
	weekendRate = 0.20
	// localTaxRate applies to the local estimate's subtotal.
	localTaxRate = 0.18
	// remoteTaxRate reconstructs tax from older backend responses that fold
	// tax into the total without itemizing it.
	remoteTaxRate = 0.15
)

// Estimator produces a pricing breakdown for a prospective rental. The backend
// pricing engine is authoritative; when it cannot be reached the estimator
// falls back to a local estimate marked as such, so the user keeps seeing a
// price instead of an error.
type Estimator interface {
	Estimate(ctx context.Context, token string, vehicleID int64, dailyRate float64, pickup, returnAt time.Time) (model.Breakdown, error)
}

type serviceImpl struct {
	remote rentello.Client
	otel   otel.Otel
}

func New(remote rentello.Client, ot otel.Otel) Estimator {
	return &serviceImpl{
		remote: remote,
		otel:   ot,
	}
}

func (s *serviceImpl) Estimate(ctx context.Context, token string, vehicleID int64, dailyRate float64, pickup, returnAt time.Time) (breakdown model.Breakdown, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Estimate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !returnAt.After(pickup) {
		return model.Breakdown{}, ErrInvalidRange
	}

	if dailyRate <= 0 {
		return model.Breakdown{}, ErrInvalidRate
	}

	remote, err := s.remote.PricingBreakdown(ctx, token, vehicleID,
		pickup.Format(constant.DateFormat), returnAt.Format(constant.DateFormat))
	if err != nil {
		if errors.Is(err, rentello.ErrUnauthorized) {
			return model.Breakdown{}, err
		}

		log.Warn().Err(err).Int64("vehicle_id", vehicleID).
			Msg("remote pricing unavailable, falling back to local estimate")

		return Local(dailyRate, pickup, returnAt)
	}

	return fromRemote(remote, pickup, returnAt), nil
}

// fromRemote maps the itemized backend response as supplied. Older backend
// versions report only days and total; only genuinely absent pieces are
// reconstructed from what is present.
func fromRemote(remote rentello.PricingBreakdown, pickup, returnAt time.Time) model.Breakdown {
	days := remote.TotalDays
	if days <= 0 {
		days = DayCount(pickup, returnAt)
	}

	tax := remote.TaxAmount
	if tax <= 0 && remote.TotalPrice > 0 {
		tax = remote.TotalPrice * remoteTaxRate
	}

	average := remote.AverageRate
	if average <= 0 && days > 0 {
		average = remote.TotalPrice / float64(days)
	}

	base := remote.BasePrice
	if base <= 0 {
		base = remote.TotalPrice - remote.WeekendSurcharge - remote.SeasonalAdjustment + remote.DiscountAmount - tax
	}

	return model.Breakdown{
		BasePrice:        roundCents(base),
		WeekendSurcharge: roundCents(remote.WeekendSurcharge),
		SeasonalAdjust:   roundCents(remote.SeasonalAdjustment),
		DiscountAmount:   roundCents(remote.DiscountAmount),
		TaxAmount:        roundCents(tax),
		TotalPrice:       roundCents(remote.TotalPrice),
		TotalDays:        days,
		AverageRate:      roundCents(average),
		Source:           model.SourceRemote,
	}
}

// Local computes the gateway-side estimate: base price for the chargeable
// days, a surcharge per weekend day in the rental window, and tax on the
// subtotal. Seasonal adjustments and discounts need backend data, so the
// estimate carries them as zero.
func Local(dailyRate float64, pickup, returnAt time.Time) (model.Breakdown, error) {
	if !returnAt.After(pickup) {
		return model.Breakdown{}, ErrInvalidRange
	}

	if dailyRate <= 0 {
		return model.Breakdown{}, ErrInvalidRate
	}

	days := DayCount(pickup, returnAt)
	base := dailyRate * float64(days)
	surcharge := float64(WeekendDays(pickup, returnAt)) * dailyRate * weekendRate
	subtotal := base + surcharge
	tax := subtotal * localTaxRate
	total := subtotal + tax

	return model.Breakdown{
		BasePrice:        roundCents(base),
		WeekendSurcharge: roundCents(surcharge),
		TaxAmount:        roundCents(tax),
		TotalPrice:       roundCents(total),
		TotalDays:        days,
		AverageRate:      roundCents(total / float64(days)),
		Source:           model.SourceLocal,
	}, nil
}

// DayCount returns the number of chargeable days between pickup and return.
// Any started day counts in full, and a rental never charges fewer than one
// day.
func DayCount(pickup, returnAt time.Time) int {
	days := int(math.Ceil(returnAt.Sub(pickup).Hours() / 24))
	if days < 1 {
		days = 1
	}

	return days
}

// WeekendDays counts Saturdays and Sundays among the calendar dates the rental
// occupies, pickup date inclusive, return date exclusive.
func WeekendDays(pickup, returnAt time.Time) int {
	count := 0

	day := time.Date(pickup.Year(), pickup.Month(), pickup.Day(), 0, 0, 0, 0, pickup.Location())
	end := time.Date(returnAt.Year(), returnAt.Month(), returnAt.Day(), 0, 0, 0, 0, returnAt.Location())

	for day.Before(end) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			count++
		}

		day = day.AddDate(0, 0, 1)
	}

	return count
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
