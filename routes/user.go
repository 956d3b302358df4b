package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Sulaiman-Gide/purchaseRecommendation/controllers/cart"
	productControllers "github.com/Sulaiman-Gide/purchaseRecommendation/controllers/product"
	recommendControllers "github.com/Sulaiman-Gide/purchaseRecommendation/controllers/recommend"
	userControllers "github.com/Sulaiman-Gide/purchaseRecommendation/controllers/user"
	"github.com/Sulaiman-Gide/purchaseRecommendation/middleware"
	"github.com/Sulaiman-Gide/purchaseRecommendation/session"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.GET("/total", cartControllers.GetCartTotal(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db))
			cartGroup.PUT("/", cartControllers.SetCartItemQuantity(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(db))
		userGroup.GET("/products/:id", productControllers.GetProductByID(db))

		// ──────────────── Browse Categories + Products ────────────────
		userGroup.GET("/categories", productControllers.GetAllCategoriesWithProducts(db))

		// ──────────────── Personalized Recommendations ────────────────
		userGroup.GET("/recommendations", recommendControllers.GetRecommendations(db))

		// ──────────────── Favorites & Usage Stats ────────────────
		userGroup.GET("/favorites", userControllers.GetFavorites(db, sessions))
		userGroup.POST("/favorites", userControllers.AddFavorite(sessions))
		userGroup.GET("/stats", userControllers.GetStats(sessions))
		userGroup.POST("/stats/:stat", userControllers.IncrementStat(sessions))
	}

	// Catalog change feed (websocket, token carried in query by clients)
	r.GET("/catalog/ws", productControllers.CatalogWebSocketHandler)
}
