package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/shared/slug"
)

type Category struct {
	ID          string    `gorm:"primaryKey;type:char(36)"`
	Name        string    `gorm:"size:100;uniqueIndex;not null"`
	Slug        string    `gorm:"size:100;uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"size:500"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt   time.Time `gorm:"type:datetime(3);not null"`

	Subcategories []SubCategory `gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string { return "categories" }

func (c *Category) BeforeSave(*gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.FromName(c.Name)
	}
	return nil
}

type SubCategory struct {
	ID          string    `gorm:"primaryKey;type:char(36)"`
	CategoryID  string    `gorm:"type:char(36);not null;uniqueIndex:ux_subcategories_cat_slug,priority:1"`
	Name        string    `gorm:"size:100;not null"`
	Slug        string    `gorm:"size:100;not null;uniqueIndex:ux_subcategories_cat_slug,priority:2"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt   time.Time `gorm:"type:datetime(3);not null"`

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (SubCategory) TableName() string { return "subcategories" }

func (s *SubCategory) BeforeSave(*gorm.DB) error {
	if s.Slug == "" {
		s.Slug = slug.FromName(s.Name)
	}
	return nil
}

type FitType struct {
	ID       string `gorm:"primaryKey;type:char(36)"`
	Name     string `gorm:"size:100;uniqueIndex;not null"`
	Slug     string `gorm:"size:100;uniqueIndex;not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (FitType) TableName() string { return "fit_types" }

type Brand struct {
	ID       string `gorm:"primaryKey;type:char(36)"`
	Name     string `gorm:"size:100;uniqueIndex;not null"`
	Slug     string `gorm:"size:100;uniqueIndex;not null"`
	LogoURL  string `gorm:"size:500"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (Brand) TableName() string { return "brands" }

type Color struct {
	ID       string `gorm:"primaryKey;type:char(36)"`
	Name     string `gorm:"size:50;uniqueIndex;not null"`
	HexCode  string `gorm:"size:7"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (Color) TableName() string { return "colors" }

type Size struct {
	ID       string `gorm:"primaryKey;type:char(36)"`
	Name     string `gorm:"size:20;not null"`
	SizeType string `gorm:"size:20;not null;default:'clothing'"`
	Position int    `gorm:"not null;default:0"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (Size) TableName() string { return "sizes" }

type Product struct {
	ID               string `gorm:"primaryKey;type:char(36)"`
	Name             string `gorm:"size:200;not null"`
	Slug             string `gorm:"size:200;uniqueIndex;not null"`
	Description      string `gorm:"type:text"`
	ShortDescription string `gorm:"size:300"`

	CategoryID    string  `gorm:"type:char(36);not null;index:ix_products_cat_subcat,priority:1"`
	SubCategoryID string  `gorm:"type:char(36);not null;index:ix_products_cat_subcat,priority:2"`
	FitTypeID     *string `gorm:"type:char(36)"`
	BrandID       *string `gorm:"type:char(36)"`

	Price     decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	SalePrice *decimal.Decimal `gorm:"type:decimal(10,2)"`

	IsOnSale     bool `gorm:"not null;default:false"`
	IsFeatured   bool `gorm:"not null;default:false"`
	IsNewArrival bool `gorm:"not null;default:false"`
	IsBestSeller bool `gorm:"not null;default:false"`

	IsActive    bool `gorm:"not null;default:true;index:ix_products_active_available,priority:1"`
	IsAvailable bool `gorm:"not null;default:true;index:ix_products_active_available,priority:2"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`

	Category    *Category        `gorm:"foreignKey:CategoryID"`
	SubCategory *SubCategory     `gorm:"foreignKey:SubCategoryID"`
	FitType     *FitType         `gorm:"foreignKey:FitTypeID"`
	Brand       *Brand           `gorm:"foreignKey:BrandID"`
	Images      []ProductImage   `gorm:"foreignKey:ProductID"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string { return "products" }

// BeforeSave fills the slug and keeps is_on_sale consistent with the
// sale price, the same way the admin form relies on.
func (p *Product) BeforeSave(*gorm.DB) error {
	if p.Slug == "" {
		p.Slug = slug.FromName(p.Name)
	}
	p.IsOnSale = p.SalePrice != nil && p.SalePrice.LessThan(p.Price)
	return nil
}

// CurrentPrice is the sale price while the product is on sale.
func (p *Product) CurrentPrice() decimal.Decimal {
	if p.IsOnSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// DiscountPercent returns the rounded discount, 0 when not on sale.
func (p *Product) DiscountPercent() int {
	if !p.IsOnSale || p.SalePrice == nil || !p.Price.IsPositive() {
		return 0
	}
	pct := p.Price.Sub(*p.SalePrice).Div(p.Price).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// MainImage prefers the image flagged as main, falling back to the first.
func (p *Product) MainImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsMain {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

func (p *Product) HoverImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsHover {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

// InStock reports whether any available variant has stock.
func (p *Product) InStock() bool {
	for i := range p.Variants {
		if p.Variants[i].IsAvailable && p.Variants[i].StockQuantity > 0 {
			return true
		}
	}
	return false
}

type ProductImage struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	ProductID string    `gorm:"type:char(36);not null;index:ix_product_images_product"`
	URL       string    `gorm:"size:500;not null"`
	AltText   string    `gorm:"size:200"`
	IsMain    bool      `gorm:"not null;default:false"`
	IsHover   bool      `gorm:"not null;default:false"`
	Position  int       `gorm:"not null;default:0"`
	ColorID   *string   `gorm:"type:char(36)"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (ProductImage) TableName() string { return "product_images" }

type ProductVariant struct {
	ID              string          `gorm:"primaryKey;type:char(36)"`
	ProductID       string          `gorm:"type:char(36);not null;uniqueIndex:ux_variants_combo,priority:1"`
	ColorID         string          `gorm:"type:char(36);not null;uniqueIndex:ux_variants_combo,priority:2"`
	SizeID          string          `gorm:"type:char(36);not null;uniqueIndex:ux_variants_combo,priority:3"`
	SKU             string          `gorm:"size:100;uniqueIndex;not null"`
	StockQuantity   int             `gorm:"not null;default:0"`
	PriceAdjustment decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	IsAvailable     bool            `gorm:"not null;default:true"`
	CreatedAt       time.Time       `gorm:"type:datetime(3);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Color   *Color   `gorm:"foreignKey:ColorID"`
	Size    *Size    `gorm:"foreignKey:SizeID"`
}

func (ProductVariant) TableName() string { return "product_variants" }

// BeforeCreate derives the SKU from slug-color-size when not set.
// Requires Product, Color and Size to be populated on the struct.
func (v *ProductVariant) BeforeCreate(*gorm.DB) error {
	if v.SKU != "" {
		return nil
	}
	parts := []string{}
	if v.Product != nil {
		parts = append(parts, v.Product.Slug)
	}
	if v.Color != nil {
		parts = append(parts, strings.ToLower(v.Color.Name))
	}
	if v.Size != nil {
		parts = append(parts, strings.ToLower(v.Size.Name))
	}
	v.SKU = strings.ReplaceAll(strings.Join(parts, "-"), " ", "-")
	return nil
}

// EffectivePrice is the product's current price plus the variant adjustment.
func (v *ProductVariant) EffectivePrice() decimal.Decimal {
	base := decimal.Zero
	if v.Product != nil {
		base = v.Product.CurrentPrice()
	}
	return base.Add(v.PriceAdjustment)
}
