package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/http/render"
	"github.com/Gemy-star/reverse/internal/modules/cart"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
)

type CartPageHandler struct {
	catalog  catalog.Repository
	cart     *cart.Service
	renderer *render.Engine
}

func NewCartPageHandler(cat catalog.Repository, cartSvc *cart.Service, r *render.Engine) *CartPageHandler {
	return &CartPageHandler{catalog: cat, cart: cartSvc, renderer: r}
}

func (h *CartPageHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	cats, err := h.catalog.ActiveCategories(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	userID, sessionKey := identity(c)
	crt, err := h.cart.CartFor(ctx, userID, sessionKey)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	page := h.cart.BuildPage(ctx, crt, "")
	page.Base = baseFor(c, "Your Cart", cats)

	h.renderer.HTML(c, http.StatusOK, "cart", page)
}
