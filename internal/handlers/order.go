// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/artisanhub/marketplace-backend/internal/services"
	"github.com/artisanhub/marketplace-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /api/orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	order, err := h.orderService.Checkout(accountID, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, order)
}

// GET /api/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(accountID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, orders)
}
