package shipping

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testRates() Rates {
	return Rates{
		Threshold:    decimal.NewFromInt(1000),
		Cairo:        decimal.NewFromInt(50),
		OutsideCairo: decimal.NewFromInt(75),
	}
}

func TestForCartEmptyShipsFree(t *testing.T) {
	q := ForCart(decimal.Zero, 0, CityInsideCairo, testRates())
	if !q.Cost.IsZero() {
		t.Errorf("cost = %s, want 0", q.Cost)
	}
	if q.Label != "Free (No Items)" {
		t.Errorf("label = %q", q.Label)
	}
}

func TestForCartThresholdShipsFree(t *testing.T) {
	for _, subtotal := range []int64{1000, 1500} {
		q := ForCart(decimal.NewFromInt(subtotal), 3, CityOutsideCairo, testRates())
		if !q.Cost.IsZero() {
			t.Errorf("subtotal %d: cost = %s, want 0", subtotal, q.Cost)
		}
		if q.Label != "Free (Threshold Met)" {
			t.Errorf("subtotal %d: label = %q", subtotal, q.Label)
		}
	}
}

func TestForCartCityRates(t *testing.T) {
	r := testRates()

	q := ForCart(decimal.NewFromInt(500), 2, CityInsideCairo, r)
	if !q.Cost.Equal(r.Cairo) {
		t.Errorf("cairo cost = %s, want %s", q.Cost, r.Cairo)
	}

	q = ForCart(decimal.NewFromInt(500), 2, CityOutsideCairo, r)
	if !q.Cost.Equal(r.OutsideCairo) {
		t.Errorf("outside cost = %s, want %s", q.Cost, r.OutsideCairo)
	}
}

func TestForCartUnknownCityEstimates(t *testing.T) {
	r := testRates()
	q := ForCart(decimal.NewFromInt(500), 2, "", r)
	if !q.Cost.Equal(r.Cairo) {
		t.Errorf("estimate cost = %s, want %s", q.Cost, r.Cairo)
	}
	if q.Label != "Shipping (Estimate)" {
		t.Errorf("label = %q", q.Label)
	}
}

func TestForCartJustBelowThreshold(t *testing.T) {
	r := testRates()
	q := ForCart(decimal.NewFromFloat(999.99), 1, CityInsideCairo, r)
	if q.Cost.IsZero() {
		t.Error("999.99 should not ship free with threshold 1000")
	}
}
