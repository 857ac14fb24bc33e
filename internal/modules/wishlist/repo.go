package wishlist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/modules/catalog"
)

type Repository interface {
	// AddProduct returns created=false when the product was already listed.
	AddProduct(ctx context.Context, userID, productID string) (created bool, err error)
	// RemoveProduct returns removed=false when the product was not listed.
	RemoveProduct(ctx context.Context, userID, productID string) (removed bool, err error)
	Count(ctx context.Context, userID string) (int64, error)
	Products(ctx context.Context, userID string) ([]catalog.Product, error)
	ProductIDs(ctx context.Context, userID string) (map[string]bool, error)
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

var _ Repository = (*GormRepo)(nil)

func (r *GormRepo) getOrCreate(ctx context.Context, userID string) (Wishlist, error) {
	var w Wishlist
	err := r.db.WithContext(ctx).
		Where(Wishlist{UserID: userID}).
		Attrs(Wishlist{ID: uuid.NewString()}).
		FirstOrCreate(&w).Error
	return w, err
}

func (r *GormRepo) AddProduct(ctx context.Context, userID, productID string) (bool, error) {
	w, err := r.getOrCreate(ctx, userID)
	if err != nil {
		return false, err
	}

	item := WishlistItem{
		ID:         uuid.NewString(),
		WishlistID: w.ID,
		ProductID:  productID,
		AddedAt:    time.Now(),
	}
	err = r.db.WithContext(ctx).Create(&item).Error
	if catalog.IsDuplicateKey(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *GormRepo) RemoveProduct(ctx context.Context, userID, productID string) (bool, error) {
	var w Wishlist
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	res := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND product_id = ?", w.ID, productID).
		Delete(&WishlistItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) Count(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&WishlistItem{}).
		Joins("JOIN wishlists w ON w.id = wishlist_items.wishlist_id").
		Where("w.user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *GormRepo) Products(ctx context.Context, userID string) ([]catalog.Product, error) {
	var items []WishlistItem
	err := r.db.WithContext(ctx).
		Joins("JOIN wishlists w ON w.id = wishlist_items.wishlist_id").
		Where("w.user_id = ?", userID).
		Order("wishlist_items.added_at desc").
		Preload("Product.Category").
		Preload("Product.Brand").
		Preload("Product.Images").
		Preload("Product.Variants").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Product, 0, len(items))
	for _, it := range items {
		if it.Product != nil {
			out = append(out, *it.Product)
		}
	}
	return out, nil
}

func (r *GormRepo) ProductIDs(ctx context.Context, userID string) (map[string]bool, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&WishlistItem{}).
		Joins("JOIN wishlists w ON w.id = wishlist_items.wishlist_id").
		Where("w.user_id = ?", userID).
		Pluck("wishlist_items.product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
