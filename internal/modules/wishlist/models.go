package wishlist

import (
	"time"

	"github.com/Gemy-star/reverse/internal/modules/catalog"
)

type Wishlist struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	UserID    string    `gorm:"type:char(36);not null;uniqueIndex:ux_wishlists_user"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`

	Items []WishlistItem `gorm:"foreignKey:WishlistID"`
}

func (Wishlist) TableName() string { return "wishlists" }

type WishlistItem struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	WishlistID string    `gorm:"type:char(36);not null;uniqueIndex:ux_wishlist_items_pair,priority:1"`
	ProductID  string    `gorm:"type:char(36);not null;uniqueIndex:ux_wishlist_items_pair,priority:2"`
	AddedAt    time.Time `gorm:"type:datetime(3);not null"`

	Product *catalog.Product `gorm:"foreignKey:ProductID"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }
