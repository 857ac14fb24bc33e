package view

type Slide struct {
	ImageURL   string
	AltText    string
	Heading    string
	Subheading string
	ButtonText string
	ButtonURL  string
}

/// HomePage feeds the landing template: the hero slider plus four
// flag-gated product rows. A row renders only when its Show flag is true
// and it has at least one card.
type HomePage struct {
	Base

	Slides []Slide

	ShowFeatured    bool
	ShowNewArrivals bool
	ShowBestSellers bool
	ShowSale        bool

	Featured    []ProductCard
	NewArrivals []ProductCard
	BestSellers []ProductCard
	Sale        []ProductCard
}
