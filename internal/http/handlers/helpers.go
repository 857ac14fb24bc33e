package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/pkg/view"
)

// baseFor fills the fields every page shares: nav categories, signed-in
// user, one-shot flash and the CSRF token for forms and fetch calls.
func baseFor(c *gin.Context, title string, cats []catalog.Category) view.Base {
	b := view.Base{
		Title:     title,
		CSRFToken: middleware.GetCSRFToken(c),
		Flash:     middleware.GetFlash(c),
		SearchURL: "/shop/api/search/",
	}
	b.Categories = make([]view.NavCategory, 0, len(cats))
	for _, cat := range cats {
		b.Categories = append(b.Categories, view.NavCategory{
			Name: cat.Name,
			Slug: cat.Slug,
			URL:  "/category/" + cat.Slug + "/",
		})
	}
	if u, ok := middleware.CurrentUser(c); ok {
		b.User = &view.User{ID: u.ID, Email: u.Email, FirstName: u.FirstName, IsAdmin: u.IsAdmin}
	}
	return b
}

// identity resolves who owns the cart: the user when signed in, the
// guest session key otherwise.
func identity(c *gin.Context) (userID, sessionKey string) {
	if u, ok := middleware.CurrentUser(c); ok {
		return u.ID, ""
	}
	return "", middleware.GuestKey(c)
}

// cardFor maps a product onto the reusable card partial's view model.
// wishlisted may be nil for anonymous visitors.
func cardFor(p catalog.Product, wishlisted map[string]bool, currency string) view.ProductCard {
	card := view.ProductCard{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		URL:          "/product/" + p.Slug + "/",
		Price:        view.Money(p.Price, currency),
		IsOnSale:     p.IsOnSale,
		DiscountPct:  p.DiscountPercent(),
		IsNewArrival: p.IsNewArrival,
		IsBestSeller: p.IsBestSeller,
		InStock:      p.InStock(),
		InWishlist:   wishlisted != nil && wishlisted[p.ID],
	}
	if p.IsOnSale && p.SalePrice != nil {
		card.SalePrice = view.Money(*p.SalePrice, currency)
	}
	if img := p.MainImage(); img != nil {
		card.ImageURL = img.URL
	}
	if img := p.HoverImage(); img != nil {
		card.HoverImageURL = img.URL
	}
	if p.Brand != nil {
		card.BrandName = p.Brand.Name
	}
	if p.Category != nil {
		card.CategoryName = p.Category.Name
	}
	return card
}

func cardsFor(products []catalog.Product, wishlisted map[string]bool, currency string) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(products))
	for _, p := range products {
		out = append(out, cardFor(p, wishlisted, currency))
	}
	return out
}

func currencyFor(ctx context.Context, cfg *settings.Service) string {
	return cfg.String(ctx, settings.KeySiteCurrency)
}
