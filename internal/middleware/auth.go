// internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artisanhub/marketplace-backend/internal/models"
	"github.com/artisanhub/marketplace-backend/internal/utils"
)

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header",
			})
			c.Abort()
			return
		}

		token := parts[1]
		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Set account info in context
		c.Set("account_id", claims.AccountID)
		c.Set("account_kind", claims.Kind)
		c.Next()
	}
}

// SellerRequired gates product creation and image upload. Runs after
// AuthRequired.
func SellerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, exists := c.Get("account_kind")
		if !exists || kind != string(models.AccountKindSeller) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only sellers can perform this action",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// PersonalRequired gates checkout: sellers browse the catalog but do
// not place orders.
func PersonalRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, exists := c.Get("account_kind")
		if !exists || kind != string(models.AccountKindPersonal) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only personal accounts can perform this action",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
