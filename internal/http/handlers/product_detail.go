package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/http/render"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/internal/modules/wishlist"
	"github.com/Gemy-star/reverse/internal/shared/apperr"
	"github.com/Gemy-star/reverse/pkg/view"
)

const relatedLimit = 8

type ProductHandler struct {
	catalog  catalog.Repository
	wishlist wishlist.Repository
	cfg      *settings.Service
	renderer *render.Engine
}

func NewProductHandler(cat catalog.Repository, wl wishlist.Repository, cfg *settings.Service, r *render.Engine) *ProductHandler {
	return &ProductHandler{catalog: cat, wishlist: wl, cfg: cfg, renderer: r}
}

func (h *ProductHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	p, err := h.catalog.ProductBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	cats, err := h.catalog.ActiveCategories(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	currency := currencyFor(ctx, h.cfg)
	page := view.ProductDetailPage{
		Base:        baseFor(c, p.Name, cats),
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       view.Money(p.Price, currency),
		IsOnSale:    p.IsOnSale,
		DiscountPct: p.DiscountPercent(),
		InStock:     p.InStock(),
		ProductID:   p.ID,
	}
	if p.IsOnSale && p.SalePrice != nil {
		page.SalePrice = view.Money(*p.SalePrice, currency)
	}
	if p.Brand != nil {
		page.BrandName = p.Brand.Name
	}
	if p.Category != nil {
		page.CategoryName = p.Category.Name
		page.CategoryURL = "/category/" + p.Category.Slug + "/"
	}

	page.Images = make([]view.ProductImage, 0, len(p.Images))
	for _, img := range p.Images {
		page.Images = append(page.Images, view.ProductImage{
			URL:     img.URL,
			AltText: img.AltText,
			IsMain:  img.IsMain,
		})
	}

	if colors, err := h.catalog.AvailableColors(ctx, p.ID); err == nil {
		for _, col := range colors {
			page.AvailableColors = append(page.AvailableColors, view.VariantOption{ID: col.ID, Name: col.Name})
		}
	}
	if sizes, err := h.catalog.AvailableSizes(ctx, p.ID); err == nil {
		for _, s := range sizes {
			page.AvailableSizes = append(page.AvailableSizes, view.VariantOption{ID: s.ID, Name: s.Name})
		}
	}

	for _, v := range p.Variants {
		if !v.IsAvailable {
			continue
		}
		vv := view.Variant{
			ID:    v.ID,
			Price: view.Money(v.EffectivePrice(), currency),
			Stock: v.StockQuantity,
			SKU:   v.SKU,
		}
		// preloaded variants carry no Product pointer; price the variant
		// off the page's product
		if v.Product == nil {
			vv.Price = view.Money(p.CurrentPrice().Add(v.PriceAdjustment), currency)
		}
		if v.Color != nil {
			vv.Color = v.Color.Name
		}
		if v.Size != nil {
			vv.Size = v.Size.Name
		}
		page.Variants = append(page.Variants, vv)
	}

	var wishlisted map[string]bool
	if u, ok := middleware.CurrentUser(c); ok {
		wishlisted, _ = h.wishlist.ProductIDs(ctx, u.ID)
	}
	if related, err := h.catalog.Related(ctx, p.CategoryID, p.ID, relatedLimit); err == nil {
		page.Related = cardsFor(related, wishlisted, currency)
	}

	h.renderer.HTML(c, http.StatusOK, "product_detail", page)
}
