package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/modules/cart"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/shared/apperr"
)

type CartAPIHandler struct {
	catalog  catalog.Repository
	cart     *cart.Service
	guestCfg middleware.GuestCfg
}

func NewCartAPIHandler(cat catalog.Repository, cartSvc *cart.Service, guestCfg middleware.GuestCfg) *CartAPIHandler {
	return &CartAPIHandler{catalog: cat, cart: cartSvc, guestCfg: guestCfg}
}

type addToCartReq struct {
	ProductID        string `json:"product_id"`
	ProductVariantID string `json:"product_variant_id"`
	Quantity         int    `json:"quantity"`
}

// Add puts a variant in the caller's cart. Card buttons send a
// product_id and the server picks the first in-stock variant; the detail
// page sends an explicit product_variant_id.
func (h *CartAPIHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request body.", nil))
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	if req.ProductID == "" && req.ProductVariantID == "" {
		middleware.Fail(c, apperr.InvalidErr("product_id or product_variant_id is required.", nil))
		return
	}

	var variant catalog.ProductVariant
	var err error
	if req.ProductVariantID != "" {
		variant, err = h.catalog.VariantByID(ctx, req.ProductVariantID)
	} else {
		variant, err = h.catalog.FirstAvailableVariant(ctx, req.ProductID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("This product is out of stock."))
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if !variant.IsAvailable || variant.StockQuantity < req.Quantity {
		middleware.Fail(c, apperr.InvalidErr("Not enough stock for this item.", nil))
		return
	}

	userID, _ := identity(c)
	sessionKey := ""
	if userID == "" {
		sessionKey = middleware.EnsureGuestKey(c, h.guestCfg)
	}

	crt, err := h.cart.OpenCartFor(ctx, userID, sessionKey)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if err := h.cart.Repo().AddItem(ctx, crt.ID, variant.ID, req.Quantity); err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Added to cart.",
		"cart_count": h.cart.Count(ctx, userID, sessionKey),
	})
}

type updateCartReq struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// Update sets a line's quantity; zero removes it.
func (h *CartAPIHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateCartReq
	if err := c.ShouldBindJSON(&req); err != nil || req.VariantID == "" {
		middleware.Fail(c, apperr.InvalidErr("Invalid request body.", nil))
		return
	}
	if req.Quantity < 0 {
		middleware.Fail(c, apperr.InvalidErr("Quantity cannot be negative.", nil))
		return
	}

	userID, sessionKey := identity(c)
	crt, err := h.cart.CartFor(ctx, userID, sessionKey)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if crt.ID == "" {
		middleware.Fail(c, apperr.NotFoundErr("Your cart is empty."))
		return
	}
	if err := h.cart.Repo().UpdateItemQty(ctx, crt.ID, req.VariantID, req.Quantity); err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Cart updated.",
		"cart_count": h.cart.Count(ctx, userID, sessionKey),
	})
}

type removeCartReq struct {
	VariantID string `json:"variant_id"`
}

func (h *CartAPIHandler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	var req removeCartReq
	if err := c.ShouldBindJSON(&req); err != nil || req.VariantID == "" {
		middleware.Fail(c, apperr.InvalidErr("Invalid request body.", nil))
		return
	}

	userID, sessionKey := identity(c)
	crt, err := h.cart.CartFor(ctx, userID, sessionKey)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if crt.ID == "" {
		middleware.Fail(c, apperr.NotFoundErr("Your cart is empty."))
		return
	}
	if err := h.cart.Repo().RemoveItem(ctx, crt.ID, req.VariantID); err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Removed from cart.",
		"cart_count": h.cart.Count(ctx, userID, sessionKey),
	})
}
