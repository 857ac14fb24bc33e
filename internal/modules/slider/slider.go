package slider

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// HomeSlider is one slide of the home page hero carousel.
type HomeSlider struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	ImageURL   string    `gorm:"size:500;not null"`
	AltText    string    `gorm:"size:255;not null"`
	Heading    string    `gorm:"size:255;not null"`
	Subheading string    `gorm:"type:text;not null"`
	ButtonText string    `gorm:"size:100;not null"`
	ButtonURL  string    `gorm:"size:255;not null"`
	Position   int       `gorm:"not null;default:0"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt  time.Time `gorm:"type:datetime(3);not null"`
}

func (HomeSlider) TableName() string { return "home_sliders" }

type Repository interface {
	Active(ctx context.Context) ([]HomeSlider, error)
}

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

var _ Repository = (*GormRepo)(nil)

func (r *GormRepo) Active(ctx context.Context) ([]HomeSlider, error) {
	var items []HomeSlider
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("position asc").
		Find(&items).Error
	return items, err
}
