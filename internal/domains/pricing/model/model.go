package model

const (
	// SourceRemote marks a breakdown computed by the backend pricing engine.
	SourceRemote = "remote"
	// SourceLocal marks a gateway-side estimate produced while the backend
	// pricing endpoint was unreachable.
	SourceLocal = "local"
)

// Breakdown is an itemized rental price. Amounts are in the platform currency
// and rounded to cents.
type Breakdown struct {
	BasePrice        float64 `json:"base_price"`
	WeekendSurcharge float64 `json:"weekend_surcharge"`
	SeasonalAdjust   float64 `json:"seasonal_adjustment"`
	DiscountAmount   float64 `json:"discount_amount"`
	TaxAmount        float64 `json:"tax_amount"`
	TotalPrice       float64 `json:"total_price"`
	TotalDays        int     `json:"total_days"`
	AverageRate      float64 `json:"average_rate"`
	Source           string  `json:"source"`
}

// IsEstimate reports whether the breakdown was produced locally rather than by
// the backend pricing engine.
func (b Breakdown) IsEstimate() bool {
	return b.Source == SourceLocal
}
