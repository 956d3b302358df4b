package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Sulaiman-Gide/purchaseRecommendation/controllers/cart"
	productControllers "github.com/Sulaiman-Gide/purchaseRecommendation/controllers/product"
	"github.com/Sulaiman-Gide/purchaseRecommendation/middleware"
	"github.com/Sulaiman-Gide/purchaseRecommendation/session"
)

// SetupGuestRoutes registers the "/guest/*" endpoints backed by the
// key-value session store. Requires a guest JWT.
func SetupGuestRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	guestGroup := r.Group("/guest")
	guestGroup.Use(middleware.ValidateToken, middleware.RequireGuest)
	{
		cartGroup := guestGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetGuestCart(sessions))
			cartGroup.GET("/total", cartControllers.GetGuestCartTotal(db, sessions))
			cartGroup.POST("/", cartControllers.AddGuestCartItem(db, sessions))
			cartGroup.PUT("/", cartControllers.SetGuestCartItemQuantity(db, sessions))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteGuestCartItem(sessions))
			cartGroup.DELETE("/", cartControllers.ClearGuestCart(sessions))
		}

		// Guests browse the same catalog
		guestGroup.GET("/products", productControllers.GetProducts(db))
		guestGroup.GET("/products/:id", productControllers.GetProductByID(db))
	}
}
