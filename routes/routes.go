package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sulaiman-Gide/purchaseRecommendation/session"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Guest,
// Order, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, sessions)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, sessions)

	// Guest session routes (guest-JWT-protected)
	SetupGuestRoutes(r, db, sessions)

	// Order routes
	SetupOrderRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
