package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/internal/shared/apperr"
	"github.com/Gemy-star/reverse/pkg/view"
)

type VariantsAPIHandler struct {
	catalog catalog.Repository
	cfg     *settings.Service
}

func NewVariantsAPIHandler(cat catalog.Repository, cfg *settings.Service) *VariantsAPIHandler {
	return &VariantsAPIHandler{catalog: cat, cfg: cfg}
}

// Get lists a product's purchasable variants, optionally narrowed by
// color/size IDs (the detail page swatches).
func (h *VariantsAPIHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	productID := c.Param("productID")
	if productID == "" {
		middleware.Fail(c, apperr.InvalidErr("product id is required.", nil))
		return
	}

	variants, err := h.catalog.Variants(ctx, catalog.VariantFilter{
		ProductID: productID,
		ColorID:   c.Query("color"),
		SizeID:    c.Query("size"),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	currency := currencyFor(ctx, h.cfg)
	out := make([]gin.H, 0, len(variants))
	for _, v := range variants {
		item := gin.H{
			"id":    v.ID,
			"price": view.Money(v.EffectivePrice(), currency),
			"stock": v.StockQuantity,
			"sku":   v.SKU,
		}
		if v.Color != nil {
			item["color"] = v.Color.Name
		}
		if v.Size != nil {
			item["size"] = v.Size.Name
		}
		out = append(out, item)
	}

	c.JSON(http.StatusOK, gin.H{"variants": out})
}
