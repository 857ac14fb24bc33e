package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/pkg/view"
)

const searchLimit = 10

type SearchAPIHandler struct {
	catalog catalog.Repository
	cfg     *settings.Service
}

func NewSearchAPIHandler(cat catalog.Repository, cfg *settings.Service) *SearchAPIHandler {
	return &SearchAPIHandler{catalog: cat, cfg: cfg}
}

// Get powers the navbar live search. Queries under two characters
// return an empty list rather than an error.
func (h *SearchAPIHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 2 {
		c.JSON(http.StatusOK, gin.H{"products": []gin.H{}})
		return
	}

	products, err := h.catalog.Search(ctx, q, searchLimit)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	currency := currencyFor(ctx, h.cfg)
	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		item := gin.H{
			"id":    p.ID,
			"name":  p.Name,
			"price": view.Money(p.CurrentPrice(), currency),
			"url":   "/product/" + p.Slug + "/",
		}
		if img := p.MainImage(); img != nil {
			item["image"] = img.URL
		}
		if p.Category != nil {
			item["category"] = p.Category.Name
		}
		if p.Brand != nil {
			item["brand"] = p.Brand.Name
		}
		out = append(out, item)
	}

	c.JSON(http.StatusOK, gin.H{"products": out})
}
