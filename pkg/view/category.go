package view

type FilterOption struct {
	Name string
	Slug string
}

// CategoryFilters echoes the querystring back into the filter sidebar so
// selected options stay selected across requests.
type CategoryFilters struct {
	Subcategory string
	FitType     string
	Brand       string
	Color       string
	Size        string
	MinPrice    string
	MaxPrice    string
	Sort        string
}

type CategoryPage struct {
	Base

	CategoryName    string
	CategorySlug    string
	SubcategoryName string
	Description     string

	Products   []ProductCard
	Pagination Pagination

	Subcategories []FilterOption
	FitTypes      []FilterOption
	Brands        []FilterOption
	Colors        []FilterOption
	Sizes         []FilterOption

	PriceMin string
	PriceMax string

	Filters CategoryFilters
}
