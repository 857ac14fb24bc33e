package orders

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("order not found")

type ListByUserParams struct {
	UserID   string
	Page     int
	PageSize int
	Status   string // optional filter
}

type ListItem struct {
	Order     Order
	ItemCount int
}

type ListResult struct {
	Items []ListItem
	Total int64
}

type Repository interface {
	ListByUser(ctx context.Context, p ListByUserParams) (ListResult, error)
	ByNumberForUser(ctx context.Context, userID, number string) (Order, error)
	ByNumber(ctx context.Context, number string) (Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	Create(ctx context.Context, o *Order) error
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

var _ Repository = (*GormRepo)(nil)

func (r *GormRepo) ListByUser(ctx context.Context, p ListByUserParams) (ListResult, error) {
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.Page < 1 {
		p.Page = 1
	}

	q := r.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", p.UserID)
	if p.Status != "" {
		q = q.Where("status = ?", p.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	var rows []Order
	err := q.Order("created_at desc").
		Limit(p.PageSize).
		Offset((p.Page - 1) * p.PageSize).
		Find(&rows).Error
	if err != nil {
		return ListResult{}, err
	}

	out := ListResult{Items: make([]ListItem, len(rows)), Total: total}
	for i, o := range rows {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderItem{}).
			Where("order_id = ?", o.ID).
			Select("COALESCE(SUM(quantity), 0)").
			Scan(&count).Error; err != nil {
			return ListResult{}, err
		}
		out.Items[i] = ListItem{Order: o, ItemCount: int(count)}
	}
	return out, nil
}

func (r *GormRepo) ByNumberForUser(ctx context.Context, userID, number string) (Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Preload("Items.Variant.Product").
		Preload("Items.Variant.Color").
		Preload("Items.Variant.Size").
		Where("order_number = ? AND user_id = ?", number, userID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *GormRepo) ByNumber(ctx context.Context, number string) (Order, error) {
	var o Order
	err := r.db.WithContext(ctx).Where("order_number = ?", number).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *GormRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	return r.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *GormRepo) Create(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}
