package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// HomeFlag selects one of the flag-gated home page rows.
type HomeFlag string

const (
	FlagFeatured   HomeFlag = "is_featured"
	FlagNewArrival HomeFlag = "is_new_arrival"
	FlagBestSeller HomeFlag = "is_best_seller"
	FlagOnSale     HomeFlag = "is_on_sale"
)

// Sort keys accepted by the listing pages.
const (
	SortName      = "name"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

type ListParams struct {
	CategoryID    string
	SubCategoryID string

	SubcategorySlug string
	FitTypeSlug     string
	BrandSlug       string
	ColorName       string
	SizeName        string
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal

	Sort     string
	Page     int
	PageSize int
}

type ListResult struct {
	Items []Product
	Total int64
}

type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

type VariantFilter struct {
	ProductID string
	ColorID   string
	SizeID    string
}

// Repository is the read surface the storefront handlers consume.
type Repository interface {
	ActiveCategories(ctx context.Context) ([]Category, error)
	CategoryBySlug(ctx context.Context, slug string) (Category, error)
	SubCategoryBySlug(ctx context.Context, categoryID, slug string) (SubCategory, error)

	HomeRow(ctx context.Context, flag HomeFlag, limit int) ([]Product, error)
	List(ctx context.Context, p ListParams) (ListResult, error)
	PriceRangeFor(ctx context.Context, categoryID, subCategoryID string) (PriceRange, error)

	ProductBySlug(ctx context.Context, slug string) (Product, error)
	ProductByID(ctx context.Context, id string) (Product, error)
	Related(ctx context.Context, categoryID, excludeProductID string, limit int) ([]Product, error)
	Search(ctx context.Context, query string, limit int) ([]Product, error)

	Variants(ctx context.Context, f VariantFilter) ([]ProductVariant, error)
	VariantByID(ctx context.Context, id string) (ProductVariant, error)
	FirstAvailableVariant(ctx context.Context, productID string) (ProductVariant, error)

	ActiveFitTypes(ctx context.Context) ([]FitType, error)
	ActiveBrands(ctx context.Context) ([]Brand, error)
	ActiveColors(ctx context.Context) ([]Color, error)
	ActiveSizes(ctx context.Context) ([]Size, error)

	AvailableColors(ctx context.Context, productID string) ([]Color, error)
	AvailableSizes(ctx context.Context, productID string) ([]Size, error)
}
