package cartControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sulaiman-Gide/purchaseRecommendation/cart"
	"github.com/Sulaiman-Gide/purchaseRecommendation/models"
	"github.com/Sulaiman-Gide/purchaseRecommendation/session"
)

// Guest carts live in the key-value store as serialized line slices keyed by
// guest session ID. All mutations run through the cart package and write the
// whole blob back; the middleware serializes writes per session token.

// POST /guest/cart
func AddGuestCartItem(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		lines, err := sessions.Cart(c.Request.Context(), guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		productID := formatProductID(product.ID)
		if stockErr := cart.CheckStock(cartProduct(product), cart.Quantity(lines, productID)+1); stockErr != nil {
			c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
			return
		}

		lines = cart.Add(lines, productID)
		persistGuestCart(c, sessions, guestID, lines)
	}
}

// PUT /guest/cart
func SetGuestCartItemQuantity(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		if stockErr := cart.CheckStock(cartProduct(product), input.Quantity); input.Quantity >= 1 && stockErr != nil {
			c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
			return
		}

		lines, err := sessions.Cart(c.Request.Context(), guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		lines, err = cart.SetQuantity(lines, formatProductID(product.ID), input.Quantity)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		persistGuestCart(c, sessions, guestID, lines)
	}
}

// DELETE /guest/cart/:product_id
func DeleteGuestCartItem(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := currentUserID(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		lines, err := sessions.Cart(c.Request.Context(), guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		if cart.Quantity(lines, productID) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		lines = cart.Remove(lines, productID)
		persistGuestCart(c, sessions, guestID, lines)
	}
}

// DELETE /guest/cart
func ClearGuestCart(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := currentUserID(c)
		if !ok {
			return
		}

		if err := sessions.ClearCart(c.Request.Context(), guestID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart cleared"})
	}
}

// GET /guest/cart
func GetGuestCart(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := currentUserID(c)
		if !ok {
			return
		}

		lines, err := sessions.Cart(c.Request.Context(), guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": lines,
			"count": cart.Count(lines),
		})
	}
}

// GET /guest/cart/total
func GetGuestCartTotal(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := currentUserID(c)
		if !ok {
			return
		}

		lines, err := sessions.Cart(c.Request.Context(), guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		ids := make([]string, 0, len(lines))
		for _, l := range lines {
			ids = append(ids, l.ProductID)
		}
		var products []models.Product
		if len(ids) > 0 {
			if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}
		}

		byID := make(map[string]cart.Product, len(products))
		for _, p := range products {
			byID[formatProductID(p.ID)] = cartProduct(p)
		}
		total, missing := cart.Total(lines, func(id string) (cart.Product, bool) {
			p, ok := byID[id]
			return p, ok
		})

		c.JSON(http.StatusOK, gin.H{
			"total":            total,
			"count":            cart.Count(lines),
			"missing_products": missing,
		})
	}
}

// persistGuestCart writes the blob back and answers with the new cart. A
// failed durable write is logged but the response still reflects the
// in-memory cart, which stays authoritative for the session.
func persistGuestCart(c *gin.Context, sessions *session.Store, guestID string, lines []cart.Line) {
	if err := sessions.SaveCart(c.Request.Context(), guestID, lines); err != nil {
		log.Printf("❌ Failed to persist guest cart %s: %v", guestID, err)
	}
	c.JSON(http.StatusOK, gin.H{
		"items": lines,
		"count": cart.Count(lines),
	})
}
