package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sulaiman-Gide/purchaseRecommendation/cart"
	"github.com/Sulaiman-Gide/purchaseRecommendation/models"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

type SetQuantityInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// POST /user/cart
// Adds one unit of a product: a new line starts at quantity 1, an existing
// line is incremented. Stock is re-fetched immediately before the increment.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
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

		userCart, ok := loadUserCart(c, db, userID)
		if !ok {
			return
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", userCart.CartID, input.ProductID).First(&item).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		currentQty := 0
		if err == nil {
			currentQty = item.Quantity
		}

		// Stock limit: the cart must stay unchanged when the increment
		// would exceed what is currently in stock.
		if stockErr := cart.CheckStock(cartProduct(product), currentQty+1); stockErr != nil {
			c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
			return
		}

		if err == gorm.ErrRecordNotFound {
			newItem := models.CartItem{
				CartID:       userCart.CartID,
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductImage: product.Image,
				ProductStock: product.Stock,
				ProductPrice: product.Price,
				Quantity:     1,
				AddedAt:      time.Now(),
			}
			if err := db.Create(&newItem).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			c.JSON(http.StatusCreated, newItem)
			return
		}

		item.Quantity = currentQty + 1
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PUT /user/cart
// Replaces a line's quantity. Quantities below 1 are refused: removal goes
// through DELETE so the cart never carries a zero-quantity line.
func SetCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": cart.ErrQuantityTooLow.Error()})
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

		if stockErr := cart.CheckStock(cartProduct(product), input.Quantity); stockErr != nil {
			c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
			return
		}

		userCart, ok := loadUserCart(c, db, userID)
		if !ok {
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND product_id = ?", userCart.CartID, input.ProductID).
			First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity = input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		userCart, ok := loadUserCart(c, db, userID)
		if !ok {
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", userCart.CartID, productID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		userCart, ok := loadUserCart(c, db, userID)
		if !ok {
			return
		}

		if err := db.Where("cart_id = ?", userCart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var userCart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&userCart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": userCart.Items,
			"count": cart.Count(linesOf(userCart.Items)),
		})
	}
}

// GET /user/cart/total
// Prices the cart against the live catalog. Lines whose product has been
// deleted contribute 0 and come back in missing_products as a warning.
func GetCartTotal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		userCart, ok := loadUserCart(c, db, userID)
		if !ok {
			return
		}
		if err := db.Preload("Items").First(&userCart, userCart.CartID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		lines := linesOf(userCart.Items)

		ids := make([]uint, 0, len(userCart.Items))
		for _, item := range userCart.Items {
			ids = append(ids, item.ProductID)
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

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		var userCart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&userCart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, userCart.Items)
	}
}

// -------- helpers --------

func currentUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func loadUserCart(c *gin.Context, db *gorm.DB, userID string) (models.Cart, bool) {
	var userCart models.Cart
	if err := db.Where("user_id = ?", userID).First(&userCart).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User cart not found"})
		return models.Cart{}, false
	}
	return userCart, true
}

func linesOf(items []models.CartItem) []cart.Line {
	lines := make([]cart.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, cart.Line{
			ProductID: formatProductID(item.ProductID),
			Quantity:  item.Quantity,
		})
	}
	return lines
}

func cartProduct(p models.Product) cart.Product {
	return cart.Product{
		ID:    formatProductID(p.ID),
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
}

func formatProductID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
