package view

type CartItem struct {
	VariantID   string
	ProductName string
	ProductURL  string
	ImageURL    string
	Color       string
	Size        string
	Quantity    int
	UnitPrice   string
	LineTotal   string
}

type CartPage struct {
	Base

	Items      []CartItem
	ItemCount  int
	Subtotal   string
	Shipping   string
	ShipLabel  string
	GrandTotal string
}

type WishlistPage struct {
	Base

	Products []ProductCard
}
