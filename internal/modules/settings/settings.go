package settings

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Dynamic, admin-editable configuration: feature flags for the home page
// rows plus the shipping rates. Values live in a key/value table and are
// cached in-process for a short TTL so page renders don't hit the DB.

const (
	KeyHomeShowFeatured    = "home_show_featured"
	KeyHomeShowNewArrivals = "home_show_new_arrivals"
	KeyHomeShowBestSellers = "home_show_best_sellers"
	KeyHomeShowSale        = "home_show_sale"

	KeyShippingThreshold        = "shipping_threshold"
	KeyShippingRateCairo        = "shipping_rate_cairo"
	KeyShippingRateOutsideCairo = "shipping_rate_outside_cairo"

	KeySiteCurrency = "site_currency"
)

type SiteSetting struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"size:255;not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (SiteSetting) TableName() string { return "site_settings" }

// Defaults applied when a key has no row yet.
var Defaults = map[string]string{
	KeyHomeShowFeatured:         "true",
	KeyHomeShowNewArrivals:      "true",
	KeyHomeShowBestSellers:      "true",
	KeyHomeShowSale:             "true",
	KeyShippingThreshold:        "1000.00",
	KeyShippingRateCairo:        "50.00",
	KeyShippingRateOutsideCairo: "75.00",
	KeySiteCurrency:             "EGP",
}

type Service struct {
	db  *gorm.DB
	ttl time.Duration

	mu       sync.RWMutex
	cache    map[string]string
	cachedAt time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, ttl: 30 * time.Second}
}

func (s *Service) String(ctx context.Context, key string) string {
	if v, ok := s.lookup(ctx, key); ok {
		return v
	}
	return Defaults[key]
}

func (s *Service) Bool(ctx context.Context, key string) bool {
	v := s.String(ctx, key)
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

func (s *Service) Decimal(ctx context.Context, key string) decimal.Decimal {
	v := s.String(ctx, key)
	d, err := decimal.NewFromString(v)
	if err != nil {
		d, _ = decimal.NewFromString(Defaults[key])
	}
	return d
}

func (s *Service) Set(ctx context.Context, key, value string) error {
	row := SiteSetting{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Save(&row).Error
	if err != nil {
		return err
	}
	s.mu.Lock()
	if s.cache != nil {
		s.cache[key] = value
	}
	s.mu.Unlock()
	return nil
}

func (s *Service) lookup(ctx context.Context, key string) (string, bool) {
	s.mu.RLock()
	fresh := s.cache != nil && time.Since(s.cachedAt) < s.ttl
	if fresh {
		v, ok := s.cache[key]
		s.mu.RUnlock()
		return v, ok
	}
	s.mu.RUnlock()

	var rows []SiteSetting
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		if !errors.Is(err, context.Canceled) {
			// stale cache beats no cache
			s.mu.RLock()
			if s.cache != nil {
				v, ok := s.cache[key]
				s.mu.RUnlock()
				return v, ok
			}
			s.mu.RUnlock()
		}
		return "", false
	}

	m := make(map[string]string, len(rows))
	for _, r := range rows {
		m[r.Key] = r.Value
	}

	s.mu.Lock()
	s.cache = m
	s.cachedAt = time.Now()
	s.mu.Unlock()

	v, ok := m[key]
	return v, ok
}

// SeedDefaults inserts any missing keys with their default value.
func (s *Service) SeedDefaults(ctx context.Context) error {
	for k, v := range Defaults {
		var row SiteSetting
		err := s.db.WithContext(ctx).
			Where(SiteSetting{Key: k}).
			Attrs(SiteSetting{Value: v, UpdatedAt: time.Now()}).
			FirstOrCreate(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}
