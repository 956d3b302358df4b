package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sulaiman-Gide/purchaseRecommendation/models"
	"github.com/Sulaiman-Gide/purchaseRecommendation/session"
)

type FavoriteInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// POST /user/favorites
func AddFavorite(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionID(c)
		if !ok {
			return
		}

		var input FavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ids, err := sessions.AddFavorite(c.Request.Context(), userID, input.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"favorites": ids})
	}
}

// GET /user/favorites
// Resolves the liked product IDs against the catalog; products deleted since
// they were liked are skipped.
func GetFavorites(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionID(c)
		if !ok {
			return
		}

		ids, err := sessions.Favorites(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		if len(ids) == 0 {
			c.JSON(http.StatusOK, []models.Product{})
			return
		}

		var products []models.Product
		if err := db.Preload("Categories").Where("id IN ?", ids).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
