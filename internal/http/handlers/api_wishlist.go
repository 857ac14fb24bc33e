package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/wishlist"
	"github.com/Gemy-star/reverse/internal/shared/apperr"
)

type WishlistAPIHandler struct {
	catalog  catalog.Repository
	wishlist wishlist.Repository
}

func NewWishlistAPIHandler(cat catalog.Repository, wl wishlist.Repository) *WishlistAPIHandler {
	return &WishlistAPIHandler{catalog: cat, wishlist: wl}
}

type wishlistReq struct {
	ProductID string `json:"product_id"`
}

// Add toggles a product into the wishlist. Already-listed products are
// reported as status "exists" so the heart icon can settle, not error.
func (h *WishlistAPIHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Please sign in to use your wishlist."))
		return
	}

	var req wishlistReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		middleware.Fail(c, apperr.InvalidErr("product_id is required.", nil))
		return
	}

	if _, err := h.catalog.ProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, err)
		return
	}

	created, err := h.wishlist.AddProduct(ctx, u.ID, req.ProductID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if created {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "added",
			"message": "Added to your wishlist.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "exists",
		"message": "Already in your wishlist.",
	})
}

func (h *WishlistAPIHandler) Remove(c *gin.Context) {
	ctx := c.Request.Context()
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Please sign in to use your wishlist."))
		return
	}

	var req wishlistReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		middleware.Fail(c, apperr.InvalidErr("product_id is required.", nil))
		return
	}

	removed, err := h.wishlist.RemoveProduct(ctx, u.ID, req.ProductID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if removed {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "removed",
			"message": "Removed from your wishlist.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "missing",
		"message": "This item was not in your wishlist.",
	})
}
