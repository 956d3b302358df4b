package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Sulaiman-Gide/purchaseRecommendation/models"
	"github.com/Sulaiman-Gide/purchaseRecommendation/session"
)

// ---------------------------------------------
// GOOGLE USER LOGIN
// ---------------------------------------------
func GoogleUserLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB, sessions *session.Store) {
	var req struct {
		IDToken string `json:"idToken"`
		GuestID string `json:"guest_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	// Verify Firebase token
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		http.Error(w, "Invalid Firebase ID token", http.StatusUnauthorized)
		return
	}

	if token.Audience != projectID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	// Extract user info
	email := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	firebaseUserID := token.UID

	// ---------------------------------------------
	// 1️⃣ Fetch or Create user
	// ---------------------------------------------
	var user models.User
	err = db.Preload("Cart.Items").Where("id = ?", firebaseUserID).First(&user).Error

	if err == gorm.ErrRecordNotFound {
		user = models.User{
			ID:       firebaseUserID,
			Email:    email,
			Name:     name,
			Picture:  picture,
			Provider: "google",
			Cart:     models.Cart{UserID: firebaseUserID},
		}

		if err := db.Create(&user).Error; err != nil {
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

	} else if err == nil {
		// User already exists → refresh profile fields
		db.Model(&user).Updates(models.User{
			Name:    name,
			Picture: picture,
		})
	} else {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// ---------------------------------------------
	// 2️⃣ Merge guest session cart → user cart
	// ---------------------------------------------
	mergeStatus := "no-guest-cart"

	if req.GuestID != "" {
		merged, err := mergeGuestCartIntoUserCart(ctx, db, sessions, req.GuestID, user.ID)
		if err != nil {
			log.Printf("❌ Guest cart merge failed for %s: %v", req.GuestID, err)
			mergeStatus = "merge-failed"
		} else if merged {
			mergeStatus = "merged-success"
		} else {
			mergeStatus = "guest-cart-empty"
		}
	}

	// ---------------------------------------------
	// 3️⃣ Create auth response
	// ---------------------------------------------
	resp := map[string]interface{}{
		"message":      "Login successful",
		"merge_status": mergeStatus,
		"user":         user,
		"firebase_id":  firebaseUserID,
		"token":        issueJWT(email, "user", firebaseUserID, name, picture),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// mergeGuestCartIntoUserCart folds the guest's key-value cart into the
// user's database cart, then discards the guest blob. Returns whether
// anything was merged.
func mergeGuestCartIntoUserCart(ctx context.Context, db *gorm.DB, sessions *session.Store, guestID, userID string) (bool, error) {
	guestLines, err := sessions.Cart(ctx, guestID)
	if err != nil {
		return false, err
	}
	if len(guestLines) == 0 {
		return false, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var userCart models.Cart
		err := tx.Where("user_id = ?", userID).First(&userCart).Error
		if err == gorm.ErrRecordNotFound {
			userCart = models.Cart{UserID: userID}
			if err := tx.Create(&userCart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, line := range guestLines {
			var product models.Product
			if err := tx.First(&product, "id = ?", line.ProductID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					continue // product vanished since the guest added it
				}
				return err
			}

			var item models.CartItem
			lookupErr := tx.Where("cart_id = ? AND product_id = ?", userCart.CartID, product.ID).
				First(&item).Error

			if lookupErr == nil {
				item.Quantity += line.Quantity
				item.AddedAt = time.Now()
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
			} else if lookupErr == gorm.ErrRecordNotFound {
				newItem := models.CartItem{
					CartID:       userCart.CartID,
					ProductID:    product.ID,
					ProductName:  product.Name,
					ProductImage: product.Image,
					ProductStock: product.Stock,
					ProductPrice: product.Price,
					Quantity:     line.Quantity,
					AddedAt:      time.Now(),
				}
				if err := tx.Create(&newItem).Error; err != nil {
					return err
				}
			} else {
				return lookupErr
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	// Guest blob is disposable: a failed delete only leaves it to expire.
	if err := sessions.ClearCart(ctx, guestID); err != nil {
		log.Printf("⚠️ Failed to clear merged guest cart %s: %v", guestID, err)
	}
	return true, nil
}

// issueJWT generates the backend's own session token for a signed-in user.
func issueJWT(email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}

	return signedToken
}
