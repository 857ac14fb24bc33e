package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/modules/catalog"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
	StatusRefunded   = "refunded"
)

// Statuses in display order for the history page filter.
var Statuses = []string{
	StatusPending, StatusProcessing, StatusShipped,
	StatusDelivered, StatusCancelled, StatusRefunded,
}

func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

type Order struct {
	ID          string  `gorm:"primaryKey;type:char(36)"`
	OrderNumber string  `gorm:"size:32;uniqueIndex;not null"`
	UserID      *string `gorm:"type:char(36);index:ix_orders_user"`

	// Contact details copied at purchase time for the historical record.
	FullName    string `gorm:"size:255;not null"`
	Email       string `gorm:"size:255;not null"`
	PhoneNumber string `gorm:"size:20"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ShippingCost   decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	Status        string `gorm:"size:20;not null;default:'pending'"`
	PaymentStatus string `gorm:"size:20;not null;default:'pending'"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

// BeforeSave assigns the order number and keeps the grand total derived,
// clamped at zero when a discount exceeds the goods value.
func (o *Order) BeforeSave(*gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	o.GrandTotal = o.Subtotal.Add(o.ShippingCost).Sub(o.DiscountAmount)
	if o.GrandTotal.IsNegative() {
		o.GrandTotal = decimal.Zero
	}
	return nil
}

type OrderItem struct {
	ID              string          `gorm:"primaryKey;type:char(36)"`
	OrderID         string          `gorm:"type:char(36);not null;index:ix_order_items_order"`
	VariantID       string          `gorm:"type:char(36);not null"`
	Quantity        int             `gorm:"not null"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Variant *catalog.ProductVariant `gorm:"foreignKey:VariantID"`
}

func (OrderItem) TableName() string { return "order_items" }

func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
