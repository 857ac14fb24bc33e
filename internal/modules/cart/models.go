package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Gemy-star/reverse/internal/modules/catalog"
)

// Cart belongs to either a signed-in user or an anonymous session key,
// never both. Totals are cached columns refreshed on every mutation.
type Cart struct {
	ID         string  `gorm:"primaryKey;type:char(36)"`
	UserID     *string `gorm:"type:char(36);uniqueIndex:ux_carts_user"`
	SessionKey *string `gorm:"size:64;uniqueIndex:ux_carts_session"`

	TotalItems int             `gorm:"not null;default:0"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`

	Items []CartItem `gorm:"foreignKey:CartID"`
}

func (Cart) TableName() string { return "carts" }

type CartItem struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	CartID    string    `gorm:"type:char(36);not null;uniqueIndex:ux_cart_items_cart_variant,priority:1"`
	VariantID string    `gorm:"type:char(36);not null;uniqueIndex:ux_cart_items_cart_variant,priority:2"`
	Quantity  int       `gorm:"not null;default:1"`
	AddedAt   time.Time `gorm:"type:datetime(3);not null"`

	Variant *catalog.ProductVariant `gorm:"foreignKey:VariantID"`
}

func (CartItem) TableName() string { return "cart_items" }
