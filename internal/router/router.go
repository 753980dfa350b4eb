// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/artisanhub/marketplace-backend/internal/config"
	"github.com/artisanhub/marketplace-backend/internal/handlers"
	"github.com/artisanhub/marketplace-backend/internal/middleware"
	"github.com/artisanhub/marketplace-backend/internal/services"
	"github.com/artisanhub/marketplace-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	cartService := services.NewCartService(db)
	wishlistService := services.NewWishlistService(db)
	savedService := services.NewSavedService(db)
	orderService := services.NewOrderService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	savedHandler := handlers.NewSavedHandler(savedService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Catalog routes. Specific paths are registered before /:id so
		// "categories" never parses as a product id.
		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/categories", productHandler.ListCategories)
			products.GET("/product/:id/similar", productHandler.ListSimilar)
			products.GET("/:id", productHandler.GetProduct)

			sellers := products.Group("")
			sellers.Use(middleware.AuthRequired(), middleware.SellerRequired())
			{
				sellers.POST("", productHandler.CreateProduct)
				sellers.POST("/upload", middleware.UploadRateLimit(), productHandler.UploadImage)
			}
		}

		// Cart routes
		cart := api.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.Fetch)
			cart.POST("/add", cartHandler.Add)
			cart.PUT("/update", cartHandler.UpdateQuantity)
			cart.DELETE("/remove", cartHandler.Remove)
			cart.DELETE("/clear", cartHandler.Clear)
		}

		// Wishlist routes
		wishlist := api.Group("/wishlist")
		wishlist.Use(middleware.AuthRequired())
		{
			wishlist.GET("", wishlistHandler.Fetch)
			wishlist.POST("/add", wishlistHandler.Add)
			wishlist.DELETE("/remove", wishlistHandler.Remove)
		}

		// Saved-for-later routes
		saved := api.Group("/saved")
		saved.Use(middleware.AuthRequired())
		{
			saved.GET("", savedHandler.Fetch)
			saved.POST("/save", savedHandler.Save)
			saved.POST("/move-to-cart", savedHandler.MoveToCart)
		}

		// Order routes
		orders := api.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.GET("", orderHandler.ListOrders)
			orders.POST("/checkout", middleware.PersonalRequired(), orderHandler.Checkout)
		}
	}

	return r, nil
}
