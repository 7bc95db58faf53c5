package models

// PriceRequest is the body of POST /pricing/suggest.
type PriceRequest struct {
	MaterialsCost float64 `json:"materials_cost"`
	LaborHours    float64 `json:"labor_hours"`
	Category      string  `json:"category"`
}

// PriceSuggestion carries "suggested_price" or the older "price".
type PriceSuggestion struct {
	SuggestedPrice *float64       `json:"suggested_price,omitempty"`
	Price          *float64       `json:"price,omitempty"`
	MinPrice       *float64       `json:"min_price,omitempty"`
	MaxPrice       *float64       `json:"max_price,omitempty"`
	Explanation    *string        `json:"explanation,omitempty"`
	Confidence     *string        `json:"confidence,omitempty"`
	PriceBreakdown map[string]any `json:"price_breakdown,omitempty"`
}

// Value returns the suggested price and whether one was present.
func (p PriceSuggestion) Value() (float64, bool) {
	if p.SuggestedPrice != nil {
		return *p.SuggestedPrice, true
	}
	if p.Price != nil {
		return *p.Price, true
	}
	return 0, false
}
