package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/modules/cart"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
)

// Stubs embed their interface so only the methods a test exercises need
// an implementation; anything else panics loudly.

type stubCatalog struct {
	catalog.Repository
	products map[string]catalog.Product
	variants map[string]catalog.ProductVariant
	firstVar map[string]catalog.ProductVariant
}

func (s *stubCatalog) ProductByID(_ context.Context, id string) (catalog.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return catalog.Product{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubCatalog) VariantByID(_ context.Context, id string) (catalog.ProductVariant, error) {
	v, ok := s.variants[id]
	if !ok {
		return catalog.ProductVariant{}, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (s *stubCatalog) FirstAvailableVariant(_ context.Context, productID string) (catalog.ProductVariant, error) {
	v, ok := s.firstVar[productID]
	if !ok {
		return catalog.ProductVariant{}, gorm.ErrRecordNotFound
	}
	return v, nil
}

type stubCartRepo struct {
	cart.Repository
	userCarts    map[string]cart.Cart
	sessionCarts map[string]cart.Cart
	added        []string // "cartID/variantID" per AddItem call
}

func (s *stubCartRepo) FindUserCart(_ context.Context, userID string) (cart.Cart, error) {
	c, ok := s.userCarts[userID]
	if !ok {
		return cart.Cart{}, cart.ErrNotFound
	}
	return c, nil
}

func (s *stubCartRepo) FindSessionCart(_ context.Context, key string) (cart.Cart, error) {
	c, ok := s.sessionCarts[key]
	if !ok {
		return cart.Cart{}, cart.ErrNotFound
	}
	return c, nil
}

func (s *stubCartRepo) GetOrCreateUserCart(_ context.Context, userID string) (cart.Cart, error) {
	if c, ok := s.userCarts[userID]; ok {
		return c, nil
	}
	c := cart.Cart{ID: "cart-" + userID, UserID: &userID}
	if s.userCarts == nil {
		s.userCarts = map[string]cart.Cart{}
	}
	s.userCarts[userID] = c
	return c, nil
}

func (s *stubCartRepo) GetOrCreateSessionCart(_ context.Context, key string) (cart.Cart, error) {
	if c, ok := s.sessionCarts[key]; ok {
		return c, nil
	}
	c := cart.Cart{ID: "cart-guest"}
	if s.sessionCarts == nil {
		s.sessionCarts = map[string]cart.Cart{}
	}
	s.sessionCarts[key] = c
	return c, nil
}

func (s *stubCartRepo) AddItem(_ context.Context, cartID, variantID string, _ int) error {
	s.added = append(s.added, cartID+"/"+variantID)
	return nil
}

type stubWishlist struct {
	listed map[string]bool
	count  int64
}

func (s *stubWishlist) AddProduct(_ context.Context, _, productID string) (bool, error) {
	if s.listed[productID] {
		return false, nil
	}
	if s.listed == nil {
		s.listed = map[string]bool{}
	}
	s.listed[productID] = true
	return true, nil
}

func (s *stubWishlist) RemoveProduct(_ context.Context, _, productID string) (bool, error) {
	if !s.listed[productID] {
		return false, nil
	}
	delete(s.listed, productID)
	return true, nil
}

func (s *stubWishlist) Count(_ context.Context, _ string) (int64, error) { return s.count, nil }

func (s *stubWishlist) Products(_ context.Context, _ string) ([]catalog.Product, error) {
	return nil, nil
}

func (s *stubWishlist) ProductIDs(_ context.Context, _ string) (map[string]bool, error) {
	return s.listed, nil
}

type noopConfig struct{}

func (noopConfig) String(_ context.Context, _ string) string           { return "EGP" }
func (noopConfig) Decimal(_ context.Context, _ string) decimal.Decimal { return decimal.Zero }

// signedIn injects the session context a logged-in request would carry.
func signedIn(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_email", userID+"@example.com")
		c.Next()
	}
}

func apiRouter(register func(r *gin.Engine), extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r.Use(middleware.ErrorHandler(log, func(c *gin.Context, status int, msg, _ string) {
		c.String(status, msg)
	}))
	for _, h := range extra {
		r.Use(h)
	}
	register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("non-JSON response %d: %s", w.Code, w.Body.String())
	}
	return w, out
}

func inStockVariant(id string) catalog.ProductVariant {
	return catalog.ProductVariant{ID: id, IsAvailable: true, StockQuantity: 5}
}

func TestCountsGuest(t *testing.T) {
	svc := cart.NewService(&stubCartRepo{}, noopConfig{})
	h := NewCountsHandler(svc, &stubWishlist{count: 9})

	r := apiRouter(func(r *gin.Engine) { r.GET("/shop/api/get-counts/", h.Get) })
	w, out := doJSON(t, r, http.MethodGet, "/shop/api/get-counts/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if out["cart_count"] != float64(0) || out["wishlist_count"] != float64(0) {
		t.Errorf("guest counts = %v", out)
	}
}

func TestCountsSignedIn(t *testing.T) {
	repo := &stubCartRepo{userCarts: map[string]cart.Cart{
		"u1": {ID: "c1", TotalItems: 3},
	}}
	h := NewCountsHandler(cart.NewService(repo, noopConfig{}), &stubWishlist{count: 2})

	r := apiRouter(func(r *gin.Engine) { r.GET("/shop/api/get-counts/", h.Get) }, signedIn("u1"))
	_, out := doJSON(t, r, http.MethodGet, "/shop/api/get-counts/", "")

	if out["cart_count"] != float64(3) {
		t.Errorf("cart_count = %v", out["cart_count"])
	}
	if out["wishlist_count"] != float64(2) {
		t.Errorf("wishlist_count = %v", out["wishlist_count"])
	}
}

func TestWishlistAddRequiresAuth(t *testing.T) {
	h := NewWishlistAPIHandler(&stubCatalog{}, &stubWishlist{})

	r := apiRouter(func(r *gin.Engine) { r.POST("/shop/api/add-to-wishlist/", h.Add) })
	w, out := doJSON(t, r, http.MethodPost, "/shop/api/add-to-wishlist/", `{"product_id":"p1"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if out["success"] != false {
		t.Errorf("body = %v", out)
	}
}

func TestWishlistAddStatuses(t *testing.T) {
	cat := &stubCatalog{products: map[string]catalog.Product{"p1": {ID: "p1"}}}
	wl := &stubWishlist{}
	h := NewWishlistAPIHandler(cat, wl)

	r := apiRouter(func(r *gin.Engine) { r.POST("/shop/api/add-to-wishlist/", h.Add) }, signedIn("u1"))

	_, out := doJSON(t, r, http.MethodPost, "/shop/api/add-to-wishlist/", `{"product_id":"p1"}`)
	if out["status"] != "added" {
		t.Errorf("first add status = %v", out["status"])
	}
	_, out = doJSON(t, r, http.MethodPost, "/shop/api/add-to-wishlist/", `{"product_id":"p1"}`)
	if out["status"] != "exists" {
		t.Errorf("second add status = %v", out["status"])
	}
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	h := NewWishlistAPIHandler(&stubCatalog{}, &stubWishlist{})

	r := apiRouter(func(r *gin.Engine) { r.POST("/shop/api/add-to-wishlist/", h.Add) }, signedIn("u1"))
	w, _ := doJSON(t, r, http.MethodPost, "/shop/api/add-to-wishlist/", `{"product_id":"ghost"}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestWishlistRemoveStatuses(t *testing.T) {
	wl := &stubWishlist{listed: map[string]bool{"p1": true}}
	h := NewWishlistAPIHandler(&stubCatalog{}, wl)

	r := apiRouter(func(r *gin.Engine) { r.POST("/shop/api/remove-from-wishlist/", h.Remove) }, signedIn("u1"))

	_, out := doJSON(t, r, http.MethodPost, "/shop/api/remove-from-wishlist/", `{"product_id":"p1"}`)
	if out["status"] != "removed" {
		t.Errorf("remove status = %v", out["status"])
	}
	_, out = doJSON(t, r, http.MethodPost, "/shop/api/remove-from-wishlist/", `{"product_id":"p1"}`)
	if out["status"] != "missing" {
		t.Errorf("repeat remove status = %v", out["status"])
	}
}

func TestCartAddByProductPicksFirstVariant(t *testing.T) {
	cat := &stubCatalog{firstVar: map[string]catalog.ProductVariant{
		"p1": inStockVariant("v1"),
	}}
	repo := &stubCartRepo{}
	h := NewCartAPIHandler(cat, cart.NewService(repo, noopConfig{}), middleware.GuestCfg{})

	r := apiRouter(func(r *gin.Engine) { r.POST("/shop/api/add-to-cart/", h.Add) })
	w, out := doJSON(t, r, http.MethodPost, "/shop/api/add-to-cart/", `{"product_id":"p1","quantity":2}`)

	if w.Code != http.StatusOK || out["success"] != true {
		t.Fatalf("status = %d, body = %v", w.Code, out)
	}
	if len(repo.added) != 1 || repo.added[0] != "cart-guest/v1" {
		t.Errorf("added = %v", repo.added)
	}
	// guest mutation must issue the session cookie
	cookies := w.Result().Cookies()
	found := false
	for _, ck := range cookies {
		if ck.Name == middleware.GuestCookieName && len(ck.Value) == 40 {
			found = true
		}
	}
	if !found {
		t.Errorf("guest cookie not issued: %v", cookies)
	}
}

func TestCartAddByVariantForUser(t *testing.T) {
	cat := &stubCatalog{variants: map[string]catalog.ProductVariant{
		"v9": inStockVariant("v9"),
	}}
	repo := &stubCartRepo{}
	h := NewCartAPIHandler(cat, cart.NewService(repo, noopConfig{}), middleware.GuestCfg{})

	r := apiRouter(func(r *gin.Engine) { r.POST("/shop/api/add-to-cart/", h.Add) }, signedIn("u1"))
	w, _ := doJSON(t, r, http.MethodPost, "/shop/api/add-to-cart/", `{"product_variant_id":"v9"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(repo.added) != 1 || repo.added[0] != "cart-u1/v9" {
		t.Errorf("added = %v", repo.added)
	}
}

func TestCartAddInsufficientStock(t *testing.T) {
	v := catalog.ProductVariant{ID: "v1", IsAvailable: true, StockQuantity: 1}
	cat := &stubCatalog{variants: map[string]catalog.ProductVariant{"v1": v}}
	h := NewCartAPIHandler(cat, cart.NewService(&stubCartRepo{}, noopConfig{}), middleware.GuestCfg{})

	r := apiRouter(func(r *gin.Engine) { r.POST("/shop/api/add-to-cart/", h.Add) })
	w, out := doJSON(t, r, http.MethodPost, "/shop/api/add-to-cart/", `{"product_variant_id":"v1","quantity":3}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if out["success"] != false {
		t.Errorf("body = %v", out)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	h := NewCartAPIHandler(&stubCatalog{}, cart.NewService(&stubCartRepo{}, noopConfig{}), middleware.GuestCfg{})

	r := apiRouter(func(r *gin.Engine) { r.POST("/shop/api/add-to-cart/", h.Add) })
	w, _ := doJSON(t, r, http.MethodPost, "/shop/api/add-to-cart/", `{"product_id":"ghost"}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCartAddMissingIdentifiers(t *testing.T) {
	h := NewCartAPIHandler(&stubCatalog{}, cart.NewService(&stubCartRepo{}, noopConfig{}), middleware.GuestCfg{})

	r := apiRouter(func(r *gin.Engine) { r.POST("/shop/api/add-to-cart/", h.Add) })
	w, _ := doJSON(t, r, http.MethodPost, "/shop/api/add-to-cart/", `{"quantity":1}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
