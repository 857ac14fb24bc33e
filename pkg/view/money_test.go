package view

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney(t *testing.T) {
	cases := []struct {
		amount   string
		currency string
		want     string
	}{
		{"249.99", "EGP", "E£ 249.99"},
		{"0", "EGP", "E£ 0.00"},
		{"1000", "EGP", "E£ 1000.00"},
		{"10.5", "USD", "$10.50"},
		{"10.5", "EUR", "€10.50"},
		{"99", "XYZ", "XYZ 99.00"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.amount)
		if err != nil {
			t.Fatalf("bad amount %q: %v", tc.amount, err)
		}
		if got := Money(d, tc.currency); got != tc.want {
			t.Errorf("Money(%s, %s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}
