// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/artisanhub/marketplace-backend/internal/models"
	"github.com/artisanhub/marketplace-backend/internal/services"
	"github.com/artisanhub/marketplace-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

type cartLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity,omitempty"`
}

type cartUpdateRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Direction string `json:"direction" validate:"required,oneof=inc dec"`
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /api/cart
func (h *CartHandler) Fetch(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	cart, err := h.cartService.Fetch(accountID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, cart)
}

// POST /api/cart/add
func (h *CartHandler) Add(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req cartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cart, err := h.cartService.Add(accountID, req.ProductID, req.Quantity)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Product added to cart",
		"cart":    cart,
	})
}

// PUT /api/cart/update
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cart, err := h.cartService.UpdateQuantity(accountID, req.ProductID, models.QuantityDirection(req.Direction))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, cart)
}

// DELETE /api/cart/remove
func (h *CartHandler) Remove(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req cartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cart, err := h.cartService.Remove(accountID, req.ProductID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, cart)
}

// DELETE /api/cart/clear
func (h *CartHandler) Clear(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	cart, err := h.cartService.Clear(accountID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, cart)
}
