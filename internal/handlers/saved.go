// internal/handlers/saved.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/artisanhub/marketplace-backend/internal/services"
	"github.com/artisanhub/marketplace-backend/internal/utils"
)

type SavedHandler struct {
	savedService *services.SavedService
}

type savedRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func NewSavedHandler(savedService *services.SavedService) *SavedHandler {
	return &SavedHandler{
		savedService: savedService,
	}
}

// GET /api/saved
func (h *SavedHandler) Fetch(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	saved, err := h.savedService.Fetch(accountID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, saved)
}

// POST /api/saved/save
func (h *SavedHandler) Save(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req savedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.savedService.Save(accountID, req.ProductID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// POST /api/saved/move-to-cart
func (h *SavedHandler) MoveToCart(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req savedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.savedService.MoveToCart(accountID, req.ProductID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
