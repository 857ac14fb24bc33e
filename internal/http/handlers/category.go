package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/http/render"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/internal/modules/wishlist"
	"github.com/Gemy-star/reverse/internal/shared/apperr"
	"github.com/Gemy-star/reverse/pkg/view"
)

const listingPageSize = 12

type CategoryHandler struct {
	catalog  catalog.Repository
	wishlist wishlist.Repository
	cfg      *settings.Service
	renderer *render.Engine
}

func NewCategoryHandler(cat catalog.Repository, wl wishlist.Repository, cfg *settings.Service, r *render.Engine) *CategoryHandler {
	return &CategoryHandler{catalog: cat, wishlist: wl, cfg: cfg, renderer: r}
}

// Show renders /category/:slug with the filter sidebar.
func (h *CategoryHandler) Show(c *gin.Context) {
	h.listing(c, c.Param("slug"), "")
}

// ShowSub renders /category/:slug/:subslug scoped to a subcategory.
func (h *CategoryHandler) ShowSub(c *gin.Context) {
	h.listing(c, c.Param("slug"), c.Param("subslug"))
}

func (h *CategoryHandler) listing(c *gin.Context, categorySlug, subSlug string) {
	ctx := c.Request.Context()

	cat, err := h.catalog.CategoryBySlug(ctx, categorySlug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Category not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var sub *catalog.SubCategory
	if subSlug != "" {
		s, err := h.catalog.SubCategoryBySlug(ctx, cat.ID, subSlug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Category not found."))
			return
		}
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		sub = &s
	}

	filters := view.CategoryFilters{
		Subcategory: c.Query("subcategory"),
		FitType:     c.Query("fit_type"),
		Brand:       c.Query("brand"),
		Color:       c.Query("color"),
		Size:        c.Query("size"),
		MinPrice:    c.Query("min_price"),
		MaxPrice:    c.Query("max_price"),
		Sort:        c.DefaultQuery("sort", catalog.SortName),
	}

	params := catalog.ListParams{
		CategoryID:      cat.ID,
		SubcategorySlug: filters.Subcategory,
		FitTypeSlug:     filters.FitType,
		BrandSlug:       filters.Brand,
		ColorName:       filters.Color,
		SizeName:        filters.Size,
		Sort:            filters.Sort,
		Page:            pageParam(c),
		PageSize:        listingPageSize,
	}
	if sub != nil {
		params.SubCategoryID = sub.ID
	}
	if d, err := decimal.NewFromString(filters.MinPrice); err == nil {
		params.MinPrice = &d
	}
	if d, err := decimal.NewFromString(filters.MaxPrice); err == nil {
		params.MaxPrice = &d
	}

	result, err := h.catalog.List(ctx, params)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	cats, err := h.catalog.ActiveCategories(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var wishlisted map[string]bool
	if u, ok := middleware.CurrentUser(c); ok {
		wishlisted, _ = h.wishlist.ProductIDs(ctx, u.ID)
	}
	currency := currencyFor(ctx, h.cfg)

	title := cat.Name
	page := view.CategoryPage{
		Base:         baseFor(c, title, cats),
		CategoryName: cat.Name,
		CategorySlug: cat.Slug,
		Description:  cat.Description,
		Products:     cardsFor(result.Items, wishlisted, currency),
		Pagination:   view.NewPagination(params.Page, listingPageSize, result.Total),
		Filters:      filters,
	}
	if sub != nil {
		page.SubcategoryName = sub.Name
		page.Description = sub.Description
		page.Base.Title = sub.Name
	}

	h.fillFilterOptions(c, &page, cat, sub)

	h.renderer.HTML(c, http.StatusOK, "category", page)
}

func (h *CategoryHandler) fillFilterOptions(c *gin.Context, page *view.CategoryPage, cat catalog.Category, sub *catalog.SubCategory) {
	ctx := c.Request.Context()

	for _, s := range cat.Subcategories {
		if s.IsActive {
			page.Subcategories = append(page.Subcategories, view.FilterOption{Name: s.Name, Slug: s.Slug})
		}
	}

	if fits, err := h.catalog.ActiveFitTypes(ctx); err == nil {
		for _, f := range fits {
			page.FitTypes = append(page.FitTypes, view.FilterOption{Name: f.Name, Slug: f.Slug})
		}
	}
	if brands, err := h.catalog.ActiveBrands(ctx); err == nil {
		for _, b := range brands {
			page.Brands = append(page.Brands, view.FilterOption{Name: b.Name, Slug: b.Slug})
		}
	}
	if colors, err := h.catalog.ActiveColors(ctx); err == nil {
		for _, col := range colors {
			page.Colors = append(page.Colors, view.FilterOption{Name: col.Name, Slug: col.Name})
		}
	}
	if sizes, err := h.catalog.ActiveSizes(ctx); err == nil {
		for _, s := range sizes {
			page.Sizes = append(page.Sizes, view.FilterOption{Name: s.Name, Slug: s.Name})
		}
	}

	subID := ""
	if sub != nil {
		subID = sub.ID
	}
	if r, err := h.catalog.PriceRangeFor(ctx, cat.ID, subID); err == nil {
		page.PriceMin = r.Min.StringFixed(0)
		page.PriceMax = r.Max.StringFixed(0)
	}
}

func pageParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
