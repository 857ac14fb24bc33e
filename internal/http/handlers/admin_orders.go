package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/modules/orders"
	"github.com/Gemy-star/reverse/internal/shared/apperr"
)

type AdminOrdersHandler struct {
	orders *orders.Service
}

func NewAdminOrdersHandler(svc *orders.Service) *AdminOrdersHandler {
	return &AdminOrdersHandler{orders: svc}
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an order through its lifecycle and emails the
// customer about the change.
func (h *AdminOrdersHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("status is required.", nil))
		return
	}

	if err := h.orders.UpdateStatus(c.Request.Context(), c.Param("number"), req.Status); err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated.",
	})
}
