package view

// ProductCard is the unit the reusable card partial renders: grid cells on
// the home carousels, category listings, search results and the wishlist.
type ProductCard struct {
	ID            string
	Name          string
	Slug          string
	URL           string
	ImageURL      string
	HoverImageURL string
	BrandName     string
	CategoryName  string

	Price       string
	SalePrice   string
	IsOnSale    bool
	DiscountPct int

	IsNewArrival bool
	IsBestSeller bool
	InStock      bool
	InWishlist   bool
}

type VariantOption struct {
	ID   string
	Name string
}

type Variant struct {
	ID    string
	Color string
	Size  string
	Price string
	Stock int
	SKU   string
}

type ProductDetailPage struct {
	Base

	Name            string
	Slug            string
	Description     string
	BrandName       string
	CategoryName    string
	CategoryURL     string
	Price           string
	SalePrice       string
	IsOnSale        bool
	DiscountPct     int
	InStock         bool
	Images          []ProductImage
	AvailableColors []VariantOption
	AvailableSizes  []VariantOption
	Variants        []Variant
	ProductID       string
	Related         []ProductCard
}

type ProductImage struct {
	URL     string
	AltText string
	IsMain  bool
}
