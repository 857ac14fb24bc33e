package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/http/render"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/internal/modules/slider"
	"github.com/Gemy-star/reverse/internal/modules/wishlist"
	"github.com/Gemy-star/reverse/pkg/view"
)

const homeRowLimit = 8

type HomeHandler struct {
	catalog  catalog.Repository
	sliders  slider.Repository
	wishlist wishlist.Repository
	cfg      *settings.Service
	renderer *render.Engine
}

func NewHomeHandler(cat catalog.Repository, sl slider.Repository, wl wishlist.Repository, cfg *settings.Service, r *render.Engine) *HomeHandler {
	return &HomeHandler{catalog: cat, sliders: sl, wishlist: wl, cfg: cfg, renderer: r}
}

// Show renders the landing page: the hero carousel plus up to four
// flag-gated product rows. A disabled flag skips the row's query
// entirely; an enabled row with no products renders nothing.
func (h *HomeHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	cats, err := h.catalog.ActiveCategories(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	page := view.HomePage{
		Base:            baseFor(c, "Reverse", cats),
		ShowFeatured:    h.cfg.Bool(ctx, settings.KeyHomeShowFeatured),
		ShowNewArrivals: h.cfg.Bool(ctx, settings.KeyHomeShowNewArrivals),
		ShowBestSellers: h.cfg.Bool(ctx, settings.KeyHomeShowBestSellers),
		ShowSale:        h.cfg.Bool(ctx, settings.KeyHomeShowSale),
	}

	slides, err := h.sliders.Active(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	page.Slides = make([]view.Slide, 0, len(slides))
	for _, s := range slides {
		page.Slides = append(page.Slides, view.Slide{
			ImageURL:   s.ImageURL,
			AltText:    s.AltText,
			Heading:    s.Heading,
			Subheading: s.Subheading,
			ButtonText: s.ButtonText,
			ButtonURL:  s.ButtonURL,
		})
	}

	var wishlisted map[string]bool
	if u, ok := middleware.CurrentUser(c); ok {
		wishlisted, _ = h.wishlist.ProductIDs(ctx, u.ID)
	}
	currency := currencyFor(ctx, h.cfg)

	rows := []struct {
		enabled bool
		flag    catalog.HomeFlag
		dst     *[]view.ProductCard
	}{
		{page.ShowFeatured, catalog.FlagFeatured, &page.Featured},
		{page.ShowNewArrivals, catalog.FlagNewArrival, &page.NewArrivals},
		{page.ShowBestSellers, catalog.FlagBestSeller, &page.BestSellers},
		{page.ShowSale, catalog.FlagOnSale, &page.Sale},
	}
	for _, row := range rows {
		if !row.enabled {
			continue
		}
		products, err := h.catalog.HomeRow(ctx, row.flag, homeRowLimit)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		*row.dst = cardsFor(products, wishlisted, currency)
	}

	h.renderer.HTML(c, http.StatusOK, "home", page)
}
