package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestProductBeforeSaveDerivesSlugAndSaleFlag(t *testing.T) {
	p := Product{Name: "Classic Crew Tee", Price: dec("349.00")}
	if err := p.BeforeSave(nil); err != nil {
		t.Fatal(err)
	}
	if p.Slug != "classic-crew-tee" {
		t.Errorf("slug = %q", p.Slug)
	}
	if p.IsOnSale {
		t.Error("no sale price but is_on_sale set")
	}

	sale := dec("299.00")
	p.SalePrice = &sale
	_ = p.BeforeSave(nil)
	if !p.IsOnSale {
		t.Error("sale price below price but is_on_sale not set")
	}

	// sale price at or above the regular price is not a sale
	sale = dec("400.00")
	p.SalePrice = &sale
	_ = p.BeforeSave(nil)
	if p.IsOnSale {
		t.Error("sale price above price but is_on_sale set")
	}
}

func TestProductBeforeSaveKeepsExistingSlug(t *testing.T) {
	p := Product{Name: "Renamed Product", Slug: "original-slug", Price: dec("10")}
	_ = p.BeforeSave(nil)
	if p.Slug != "original-slug" {
		t.Errorf("slug = %q, want original-slug", p.Slug)
	}
}

func TestCurrentPrice(t *testing.T) {
	sale := dec("299.00")
	p := Product{Price: dec("349.00"), SalePrice: &sale, IsOnSale: true}
	if !p.CurrentPrice().Equal(sale) {
		t.Errorf("CurrentPrice = %s, want %s", p.CurrentPrice(), sale)
	}

	p.IsOnSale = false
	if !p.CurrentPrice().Equal(p.Price) {
		t.Errorf("CurrentPrice = %s, want %s", p.CurrentPrice(), p.Price)
	}
}

func TestDiscountPercent(t *testing.T) {
	sale := dec("75.00")
	p := Product{Price: dec("100.00"), SalePrice: &sale, IsOnSale: true}
	if got := p.DiscountPercent(); got != 25 {
		t.Errorf("DiscountPercent = %d, want 25", got)
	}

	// rounds to nearest whole percent
	sale = dec("66.66")
	p.SalePrice = &sale
	if got := p.DiscountPercent(); got != 33 {
		t.Errorf("DiscountPercent = %d, want 33", got)
	}

	p.IsOnSale = false
	if got := p.DiscountPercent(); got != 0 {
		t.Errorf("DiscountPercent when not on sale = %d, want 0", got)
	}

	zero := Product{Price: decimal.Zero, SalePrice: &sale, IsOnSale: true}
	if got := zero.DiscountPercent(); got != 0 {
		t.Errorf("DiscountPercent with zero price = %d, want 0", got)
	}
}

func TestMainAndHoverImage(t *testing.T) {
	p := Product{Images: []ProductImage{
		{URL: "first.png"},
		{URL: "main.png", IsMain: true},
		{URL: "hover.png", IsHover: true},
	}}
	if img := p.MainImage(); img == nil || img.URL != "main.png" {
		t.Errorf("MainImage = %v", img)
	}
	if img := p.HoverImage(); img == nil || img.URL != "hover.png" {
		t.Errorf("HoverImage = %v", img)
	}

	// falls back to the first image
	p = Product{Images: []ProductImage{{URL: "only.png"}}}
	if img := p.MainImage(); img == nil || img.URL != "only.png" {
		t.Errorf("MainImage fallback = %v", img)
	}

	empty := Product{}
	if empty.MainImage() != nil || empty.HoverImage() != nil {
		t.Error("images on empty product should be nil")
	}
}

func TestInStock(t *testing.T) {
	p := Product{Variants: []ProductVariant{
		{StockQuantity: 0, IsAvailable: true},
		{StockQuantity: 5, IsAvailable: false},
	}}
	if p.InStock() {
		t.Error("no sellable stock but InStock true")
	}

	p.Variants = append(p.Variants, ProductVariant{StockQuantity: 1, IsAvailable: true})
	if !p.InStock() {
		t.Error("sellable stock but InStock false")
	}
}

func TestVariantBeforeCreateDerivesSKU(t *testing.T) {
	v := ProductVariant{
		Product: &Product{Slug: "classic-crew-tee"},
		Color:   &Color{Name: "Navy Blue"},
		Size:    &Size{Name: "XL"},
	}
	if err := v.BeforeCreate(nil); err != nil {
		t.Fatal(err)
	}
	if v.SKU != "classic-crew-tee-navy-blue-xl" {
		t.Errorf("SKU = %q", v.SKU)
	}

	// explicit SKU wins
	v2 := ProductVariant{SKU: "CUSTOM-1"}
	_ = v2.BeforeCreate(nil)
	if v2.SKU != "CUSTOM-1" {
		t.Errorf("SKU = %q, want CUSTOM-1", v2.SKU)
	}
}

func TestEffectivePrice(t *testing.T) {
	sale := dec("299.00")
	v := ProductVariant{
		Product:         &Product{Price: dec("349.00"), SalePrice: &sale, IsOnSale: true},
		PriceAdjustment: dec("20.00"),
	}
	if want := dec("319.00"); !v.EffectivePrice().Equal(want) {
		t.Errorf("EffectivePrice = %s, want %s", v.EffectivePrice(), want)
	}
}
