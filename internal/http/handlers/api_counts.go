package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gemy-star/reverse/internal/modules/cart"
	"github.com/Gemy-star/reverse/internal/modules/wishlist"
)

type CountsHandler struct {
	cart     *cart.Service
	wishlist wishlist.Repository
}

func NewCountsHandler(cartSvc *cart.Service, wl wishlist.Repository) *CountsHandler {
	return &CountsHandler{cart: cartSvc, wishlist: wl}
}

// Get feeds the navbar badges. Guests get their session cart count and
// a zero wishlist count.
func (h *CountsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	userID, sessionKey := identity(c)

	cartCount := h.cart.Count(ctx, userID, sessionKey)

	wishlistCount := int64(0)
	if userID != "" {
		wishlistCount, _ = h.wishlist.Count(ctx, userID)
	}

	c.JSON(http.StatusOK, gin.H{
		"cart_count":     cartCount,
		"wishlist_count": wishlistCount,
	})
}
