package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository is what the cart pages and the cart API consume.
type Repository interface {
	GetOrCreateUserCart(ctx context.Context, userID string) (Cart, error)
	GetOrCreateSessionCart(ctx context.Context, sessionKey string) (Cart, error)
	FindUserCart(ctx context.Context, userID string) (Cart, error)
	FindSessionCart(ctx context.Context, sessionKey string) (Cart, error)

	AddItem(ctx context.Context, cartID, variantID string, qty int) error
	UpdateItemQty(ctx context.Context, cartID, variantID string, qty int) error
	RemoveItem(ctx context.Context, cartID, variantID string) error
	Clear(ctx context.Context, cartID string) error
}

var ErrNotFound = errors.New("cart not found")

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

var _ Repository = (*GormRepo)(nil)

func (r *GormRepo) GetOrCreateUserCart(ctx context.Context, userID string) (Cart, error) {
	var c Cart
	err := r.db.WithContext(ctx).
		Where(Cart{UserID: &userID}).
		Attrs(Cart{ID: uuid.NewString()}).
		FirstOrCreate(&c).Error
	if err != nil {
		return Cart{}, err
	}
	return r.withItems(ctx, c.ID)
}

func (r *GormRepo) GetOrCreateSessionCart(ctx context.Context, sessionKey string) (Cart, error) {
	var c Cart
	err := r.db.WithContext(ctx).
		Where(Cart{SessionKey: &sessionKey}).
		Attrs(Cart{ID: uuid.NewString()}).
		FirstOrCreate(&c).Error
	if err != nil {
		return Cart{}, err
	}
	return r.withItems(ctx, c.ID)
}

func (r *GormRepo) FindUserCart(ctx context.Context, userID string) (Cart, error) {
	var c Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Cart{}, ErrNotFound
	}
	if err != nil {
		return Cart{}, err
	}
	return r.withItems(ctx, c.ID)
}

func (r *GormRepo) FindSessionCart(ctx context.Context, sessionKey string) (Cart, error) {
	var c Cart
	err := r.db.WithContext(ctx).Where("session_key = ?", sessionKey).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Cart{}, ErrNotFound
	}
	if err != nil {
		return Cart{}, err
	}
	return r.withItems(ctx, c.ID)
}

func (r *GormRepo) withItems(ctx context.Context, cartID string) (Cart, error) {
	var c Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("added_at asc") }).
		Preload("Items.Variant.Product.Images").
		Preload("Items.Variant.Color").
		Preload("Items.Variant.Size").
		First(&c, "id = ?", cartID).Error
	return c, err
}

// AddItem inserts or bumps the quantity of an existing line, then
// refreshes the cached totals.
func (r *GormRepo) AddItem(ctx context.Context, cartID, variantID string, qty int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item CartItem
		err := tx.Where("cart_id = ? AND variant_id = ?", cartID, variantID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = CartItem{
				ID:        uuid.NewString(),
				CartID:    cartID,
				VariantID: variantID,
				Quantity:  qty,
				AddedAt:   time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&item).Update("quantity", item.Quantity+qty).Error; err != nil {
				return err
			}
		}
		return refreshTotals(tx, cartID)
	})
}

func (r *GormRepo) UpdateItemQty(ctx context.Context, cartID, variantID string, qty int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if qty <= 0 {
			if err := tx.Where("cart_id = ? AND variant_id = ?", cartID, variantID).Delete(&CartItem{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&CartItem{}).
				Where("cart_id = ? AND variant_id = ?", cartID, variantID).
				Update("quantity", qty).Error; err != nil {
				return err
			}
		}
		return refreshTotals(tx, cartID)
	})
}

func (r *GormRepo) RemoveItem(ctx context.Context, cartID, variantID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ? AND variant_id = ?", cartID, variantID).Delete(&CartItem{}).Error; err != nil {
			return err
		}
		return refreshTotals(tx, cartID)
	})
}

func (r *GormRepo) Clear(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&CartItem{}).Error; err != nil {
			return err
		}
		return refreshTotals(tx, cartID)
	})
}

// refreshTotals recomputes the cached item count and price from the line
// items. Line price = product current price + variant adjustment, so sale
// prices flow through automatically.
func refreshTotals(tx *gorm.DB, cartID string) error {
	type line struct {
		Quantity        int
		Price           decimal.Decimal
		SalePrice       decimal.NullDecimal
		IsOnSale        bool
		PriceAdjustment decimal.Decimal
	}
	var lines []line
	err := tx.Table("cart_items ci").
		Select("ci.quantity, p.price, p.sale_price, p.is_on_sale, v.price_adjustment").
		Joins("JOIN product_variants v ON v.id = ci.variant_id").
		Joins("JOIN products p ON p.id = v.product_id").
		Where("ci.cart_id = ?", cartID).
		Scan(&lines).Error
	if err != nil {
		return err
	}

	count := 0
	total := decimal.Zero
	for _, l := range lines {
		unit := l.Price
		if l.IsOnSale && l.SalePrice.Valid {
			unit = l.SalePrice.Decimal
		}
		unit = unit.Add(l.PriceAdjustment)
		count += l.Quantity
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	return tx.Model(&Cart{}).Where("id = ?", cartID).Updates(map[string]any{
		"total_items": count,
		"total_price": total,
		"updated_at":  time.Now(),
	}).Error
}
