package cart

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/internal/modules/shipping"
	"github.com/Gemy-star/reverse/pkg/view"
)

// Config is the slice of the settings service the cart needs.
type Config interface {
	Decimal(ctx context.Context, key string) decimal.Decimal
	String(ctx context.Context, key string) string
}

type Service struct {
	repo Repository
	cfg  Config
}

func NewService(repo Repository, cfg Config) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// Repo exposes the underlying repository for line-item mutations.
func (s *Service) Repo() Repository { return s.repo }

// CartFor resolves the caller's cart: the user cart when signed in,
// otherwise the session cart. Neither existing yields an empty cart.
func (s *Service) CartFor(ctx context.Context, userID, sessionKey string) (Cart, error) {
	if userID != "" {
		c, err := s.repo.FindUserCart(ctx, userID)
		if errors.Is(err, ErrNotFound) {
			return Cart{}, nil
		}
		return c, err
	}
	if sessionKey != "" {
		c, err := s.repo.FindSessionCart(ctx, sessionKey)
		if errors.Is(err, ErrNotFound) {
			return Cart{}, nil
		}
		return c, err
	}
	return Cart{}, nil
}

// OpenCartFor is CartFor but creates the cart when missing (mutations).
func (s *Service) OpenCartFor(ctx context.Context, userID, sessionKey string) (Cart, error) {
	if userID != "" {
		return s.repo.GetOrCreateUserCart(ctx, userID)
	}
	if sessionKey != "" {
		return s.repo.GetOrCreateSessionCart(ctx, sessionKey)
	}
	return Cart{}, errors.New("cart: no user or session key")
}

func (s *Service) Count(ctx context.Context, userID, sessionKey string) int {
	c, err := s.CartFor(ctx, userID, sessionKey)
	if err != nil {
		return 0
	}
	return c.TotalItems
}

// BuildPage maps a cart into its page view model, including the shipping
// quote line. shipCity may be empty for guests without an address.
func (s *Service) BuildPage(ctx context.Context, c Cart, shipCity string) view.CartPage {
	currency := s.cfg.String(ctx, settings.KeySiteCurrency)

	page := view.CartPage{Items: make([]view.CartItem, 0, len(c.Items))}
	subtotal := decimal.Zero
	count := 0

	for _, it := range c.Items {
		if it.Quantity <= 0 || it.Variant == nil {
			continue
		}
		unit := it.Variant.EffectivePrice()
		line := unit.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
		count += it.Quantity

		item := view.CartItem{
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			UnitPrice: view.Money(unit, currency),
			LineTotal: view.Money(line, currency),
		}
		if p := it.Variant.Product; p != nil {
			item.ProductName = p.Name
			item.ProductURL = "/product/" + p.Slug + "/"
			if img := p.MainImage(); img != nil {
				item.ImageURL = img.URL
			}
		}
		if it.Variant.Color != nil {
			item.Color = it.Variant.Color.Name
		}
		if it.Variant.Size != nil {
			item.Size = it.Variant.Size.Name
		}
		page.Items = append(page.Items, item)
	}

	quote := shipping.ForCart(subtotal, count, shipCity, shipping.Rates{
		Threshold:    s.cfg.Decimal(ctx, settings.KeyShippingThreshold),
		Cairo:        s.cfg.Decimal(ctx, settings.KeyShippingRateCairo),
		OutsideCairo: s.cfg.Decimal(ctx, settings.KeyShippingRateOutsideCairo),
	})

	page.ItemCount = count
	page.Subtotal = view.Money(subtotal, currency)
	page.Shipping = view.Money(quote.Cost, currency)
	page.ShipLabel = quote.Label
	page.GrandTotal = view.Money(subtotal.Add(quote.Cost), currency)
	return page
}
