package recommendControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sulaiman-Gide/purchaseRecommendation/models"
	"github.com/Sulaiman-Gide/purchaseRecommendation/recommend"
)

// GET /user/recommendations?diversify=true
// Recomputes the affinity ranking from scratch on every call: the user's
// order history builds the category scores, the current catalog snapshot is
// scored against them. No caching.
func GetRecommendations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		var orders []models.Order
		if err := db.Where("user_id = ?", userID).Preload("Items").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order history"})
			return
		}

		var catalog []models.Product
		if err := db.Preload("Categories").Order("created_at DESC").Find(&catalog).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}

		recs := recommend.Rank(historyOf(orders), snapshotOf(catalog))
		if c.Query("diversify") == "true" {
			recs = recommend.Diversify(recs)
		}
		if recs == nil {
			recs = []recommend.Recommendation{}
		}

		c.JSON(http.StatusOK, gin.H{"recommendations": recs})
	}
}

func historyOf(orders []models.Order) []recommend.Order {
	history := make([]recommend.Order, 0, len(orders))
	for _, o := range orders {
		items := make([]recommend.OrderItem, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, recommend.OrderItem{
				ProductID:  strconv.FormatUint(uint64(item.ProductID), 10),
				Categories: item.Categories,
				Quantity:   item.Quantity,
			})
		}
		history = append(history, recommend.Order{UserID: o.UserID, Items: items})
	}
	return history
}

func snapshotOf(catalog []models.Product) []recommend.Product {
	snapshot := make([]recommend.Product, 0, len(catalog))
	for _, p := range catalog {
		snapshot = append(snapshot, recommend.Product{
			ID:         strconv.FormatUint(uint64(p.ID), 10),
			Name:       p.Name,
			Price:      p.Price,
			Image:      p.Image,
			Categories: p.CategoryNames(),
		})
	}
	return snapshot
}
