package validation

import "github.com/shopspring/decimal"

// PriceUpdatePayload is a validated price-update create/update body.
type PriceUpdatePayload struct {
	MetalID    string
	MaterialID string
	Price      decimal.Decimal
}

// ParsePriceUpdate validates a price-update payload. The price is rounded to
// two decimal places.
func ParsePriceUpdate(body []byte) (*PriceUpdatePayload, error) {
	var raw struct {
		MetalID    *string  `json:"metalId"`
		MaterialID *string  `json:"materialId"`
		Price      *float64 `json:"price"`
	}
	if err := decodeStrict(body, &raw); err != nil {
		return nil, errorf("malformed body")
	}

	var problems []string
	metalID := requireID("metalId", raw.MetalID, &problems)
	materialID := requireID("materialId", raw.MaterialID, &problems)

	var price decimal.Decimal
	switch {
	case raw.Price == nil:
		problems = append(problems, "price is required")
	case *raw.Price < 0:
		problems = append(problems, "price must be a positive number")
	default:
		price = decimal.NewFromFloat(*raw.Price).Round(2)
	}

	if len(problems) > 0 {
		return nil, &Error{Problems: problems}
	}
	return &PriceUpdatePayload{MetalID: metalID, MaterialID: materialID, Price: price}, nil
}
