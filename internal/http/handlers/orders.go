package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/http/render"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/orders"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/internal/shared/apperr"
	"github.com/Gemy-star/reverse/pkg/view"
)

const ordersPageSize = 20

type OrdersHandler struct {
	catalog  catalog.Repository
	orders   orders.Repository
	cfg      *settings.Service
	renderer *render.Engine
}

func NewOrdersHandler(cat catalog.Repository, or orders.Repository, cfg *settings.Service, r *render.Engine) *OrdersHandler {
	return &OrdersHandler{catalog: cat, orders: or, cfg: cfg, renderer: r}
}

// List renders the order history, newest first, optionally filtered by
// status.
func (h *OrdersHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Please sign in to see your orders."))
		return
	}

	cats, err := h.catalog.ActiveCategories(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	status := c.Query("status")
	if status != "" && !orders.IsValidStatus(status) {
		status = ""
	}

	pageNum := pageParam(c)
	result, err := h.orders.ListByUser(ctx, orders.ListByUserParams{
		UserID:   u.ID,
		Page:     pageNum,
		PageSize: ordersPageSize,
		Status:   status,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	currency := currencyFor(ctx, h.cfg)
	page := view.OrdersPage{
		Base:         baseFor(c, "Your Orders", cats),
		Orders:       make([]view.OrderListItem, 0, len(result.Items)),
		Pagination:   view.NewPagination(pageNum, ordersPageSize, result.Total),
		FilterStatus: status,
		Statuses:     orders.Statuses,
	}
	for _, it := range result.Items {
		page.Orders = append(page.Orders, view.OrderListItem{
			Number:    it.Order.OrderNumber,
			CreatedAt: it.Order.CreatedAt,
			Status:    it.Order.Status,
			Total:     view.Money(it.Order.GrandTotal, currency),
			ItemCount: it.ItemCount,
		})
	}

	h.renderer.HTML(c, http.StatusOK, "orders", page)
}

// Show renders one order, scoped to its owner.
func (h *OrdersHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Please sign in to see your orders."))
		return
	}

	cats, err := h.catalog.ActiveCategories(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	o, err := h.orders.ByNumberForUser(ctx, u.ID, c.Param("number"))
	if errors.Is(err, orders.ErrNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	currency := currencyFor(ctx, h.cfg)
	page := view.OrderDetailPage{
		Base:          baseFor(c, "Order "+o.OrderNumber, cats),
		Number:        o.OrderNumber,
		CreatedAt:     o.CreatedAt,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Subtotal:      view.Money(o.Subtotal, currency),
		Shipping:      view.Money(o.ShippingCost, currency),
		Discount:      view.Money(o.DiscountAmount, currency),
		GrandTotal:    view.Money(o.GrandTotal, currency),
	}
	for _, it := range o.Items {
		item := view.OrderItem{
			Quantity:  it.Quantity,
			PriceEach: view.Money(it.PriceAtPurchase, currency),
			LineTotal: view.Money(it.LineTotal(), currency),
		}
		if v := it.Variant; v != nil {
			item.SKU = v.SKU
			if v.Product != nil {
				item.ProductName = v.Product.Name
			}
			if v.Color != nil {
				item.Color = v.Color.Name
			}
			if v.Size != nil {
				item.Size = v.Size.Name
			}
		}
		page.Items = append(page.Items, item)
	}

	h.renderer.HTML(c, http.StatusOK, "order_detail", page)
}
