package shipping

import "github.com/shopspring/decimal"

// City choices carried over from the shipping address form.
const (
	CityInsideCairo  = "INSIDE_CAIRO"
	CityOutsideCairo = "OUTSIDE_CAIRO"
)

type Rates struct {
	Threshold    decimal.Decimal // free shipping above this subtotal
	Cairo        decimal.Decimal
	OutsideCairo decimal.Decimal
}

type Quote struct {
	Cost  decimal.Decimal
	Label string
}

// ForCart prices shipping for a cart: empty carts and carts over the
// threshold ship free, otherwise the rate depends on the delivery city.
// With no known city the Cairo rate is used and labelled an estimate.
func ForCart(subtotal decimal.Decimal, itemCount int, city string, r Rates) Quote {
	if itemCount <= 0 {
		return Quote{Cost: decimal.Zero, Label: "Free (No Items)"}
	}
	if subtotal.GreaterThanOrEqual(r.Threshold) {
		return Quote{Cost: decimal.Zero, Label: "Free (Threshold Met)"}
	}

	switch city {
	case CityInsideCairo:
		return Quote{Cost: r.Cairo, Label: "Shipping"}
	case CityOutsideCairo:
		return Quote{Cost: r.OutsideCairo, Label: "Shipping"}
	default:
		return Quote{Cost: r.Cairo, Label: "Shipping (Estimate)"}
	}
}
