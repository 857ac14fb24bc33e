package orders

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestBeforeSaveAssignsOrderNumber(t *testing.T) {
	o := Order{Subtotal: dec("100")}
	if err := o.BeforeSave(nil); err != nil {
		t.Fatal(err)
	}
	if len(o.OrderNumber) != 32 {
		t.Errorf("order number %q has length %d, want 32", o.OrderNumber, len(o.OrderNumber))
	}
	if o.OrderNumber != strings.ToUpper(o.OrderNumber) {
		t.Errorf("order number %q is not uppercase", o.OrderNumber)
	}
	if strings.Contains(o.OrderNumber, "-") {
		t.Errorf("order number %q contains hyphens", o.OrderNumber)
	}

	// an existing number is preserved
	o2 := Order{OrderNumber: "FIXED123"}
	_ = o2.BeforeSave(nil)
	if o2.OrderNumber != "FIXED123" {
		t.Errorf("order number overwritten: %q", o2.OrderNumber)
	}
}

func TestBeforeSaveDerivesGrandTotal(t *testing.T) {
	o := Order{
		Subtotal:       dec("500.00"),
		ShippingCost:   dec("50.00"),
		DiscountAmount: dec("100.00"),
	}
	_ = o.BeforeSave(nil)
	if want := dec("450.00"); !o.GrandTotal.Equal(want) {
		t.Errorf("GrandTotal = %s, want %s", o.GrandTotal, want)
	}
}

func TestBeforeSaveClampsNegativeTotal(t *testing.T) {
	o := Order{
		Subtotal:       dec("50.00"),
		DiscountAmount: dec("200.00"),
	}
	_ = o.BeforeSave(nil)
	if !o.GrandTotal.IsZero() {
		t.Errorf("GrandTotal = %s, want 0", o.GrandTotal)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range Statuses {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "PENDING", "unknown"} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true", s)
		}
	}
}

func TestOrderItemLineTotal(t *testing.T) {
	it := OrderItem{Quantity: 3, PriceAtPurchase: dec("49.99")}
	if want := dec("149.97"); !it.LineTotal().Equal(want) {
		t.Errorf("LineTotal = %s, want %s", it.LineTotal(), want)
	}
}
