package view

import "time"

type OrderListItem struct {
	Number    string
	CreatedAt time.Time
	Status    string
	Total     string
	ItemCount int
}

type OrdersPage struct {
	Base

	Orders       []OrderListItem
	Pagination   Pagination
	FilterStatus string
	Statuses     []string
}

type OrderItem struct {
	ProductName string
	Color       string
	Size        string
	SKU         string
	Quantity    int
	PriceEach   string
	LineTotal   string
}

type OrderDetailPage struct {
	Base

	Number        string
	CreatedAt     time.Time
	Status        string
	PaymentStatus string

	Subtotal   string
	Shipping   string
	Discount   string
	GrandTotal string

	Items []OrderItem
}
