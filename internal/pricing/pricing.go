package pricing

import "fmt"

// Rates holds the tariff constants used to price a shipment.
type Rates struct {
	PricePerPound float64
	MinimumCharge float64
	HandlingFee   float64
	InsuranceRate float64
}

// DefaultRates is the published LA -> El Salvador tariff.
var DefaultRates = Rates{
	PricePerPound: 5.50,
	MinimumCharge: 15.00,
	HandlingFee:   3.00,
	InsuranceRate: 0.03,
}

// Quote is a cost breakdown for a single shipment. Values are kept at full
// precision; rounding to two decimals happens only when formatting.
type Quote struct {
	WeightPounds  float64 `json:"weight_pounds"`
	DeclaredValue float64 `json:"declared_value"`
	BaseCost      float64 `json:"base_cost"`
	HandlingFee   float64 `json:"handling_fee"`
	Insurance     float64 `json:"insurance"`
	Total         float64 `json:"total"`
}

// ForWeight computes a quote for the given weight and declared value.
// The minimum charge acts as a floor on the base cost, not an added fee.
// Negative inputs are the caller's responsibility to reject.
func (r Rates) ForWeight(weightPounds, declaredValue float64, includeInsurance bool) Quote {
	baseCost := weightPounds * r.PricePerPound
	if baseCost < r.MinimumCharge {
		baseCost = r.MinimumCharge
	}

	insurance := 0.0
	if includeInsurance {
		insurance = declaredValue * r.InsuranceRate
	}

	return Quote{
		WeightPounds:  weightPounds,
		DeclaredValue: declaredValue,
		BaseCost:      baseCost,
		HandlingFee:   r.HandlingFee,
		Insurance:     insurance,
		Total:         baseCost + r.HandlingFee + insurance,
	}
}

// Breakdown returns the human-readable cost lines shown to the customer.
func (q Quote) Breakdown(r Rates) []string {
	lines := []string{
		fmt.Sprintf("Envío (%g lbs x $%.2f): $%.2f", q.WeightPounds, r.PricePerPound, q.BaseCost),
		fmt.Sprintf("Cargo por manejo: $%.2f", q.HandlingFee),
	}
	if q.Insurance > 0 {
		lines = append(lines, fmt.Sprintf("Seguro (%.0f%% de $%.2f): $%.2f", r.InsuranceRate*100, q.DeclaredValue, q.Insurance))
	}
	lines = append(lines, fmt.Sprintf("**Total estimado: $%.2f**", q.Total))
	return lines
}
