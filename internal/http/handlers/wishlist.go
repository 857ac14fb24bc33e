package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/http/render"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/internal/modules/wishlist"
	"github.com/Gemy-star/reverse/pkg/view"
)

type WishlistPageHandler struct {
	catalog  catalog.Repository
	wishlist wishlist.Repository
	cfg      *settings.Service
	renderer *render.Engine
}

func NewWishlistPageHandler(cat catalog.Repository, wl wishlist.Repository, cfg *settings.Service, r *render.Engine) *WishlistPageHandler {
	return &WishlistPageHandler{catalog: cat, wishlist: wl, cfg: cfg, renderer: r}
}

func (h *WishlistPageHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	cats, err := h.catalog.ActiveCategories(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	// guests see the empty state with a sign-in prompt
	u, ok := middleware.CurrentUser(c)
	if !ok {
		page := view.WishlistPage{Base: baseFor(c, "Your Wishlist", cats)}
		h.renderer.HTML(c, http.StatusOK, "wishlist", page)
		return
	}

	products, err := h.wishlist.Products(ctx, u.ID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	// everything on this page is in the wishlist
	wishlisted := make(map[string]bool, len(products))
	for _, p := range products {
		wishlisted[p.ID] = true
	}

	page := view.WishlistPage{
		Base:     baseFor(c, "Your Wishlist", cats),
		Products: cardsFor(products, wishlisted, currencyFor(ctx, h.cfg)),
	}

	h.renderer.HTML(c, http.StatusOK, "wishlist", page)
}
