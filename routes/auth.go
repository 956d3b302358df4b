package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sulaiman-Gide/purchaseRecommendation/auth"
	"github.com/Sulaiman-Gide/purchaseRecommendation/session"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	authGroup := r.Group("/auth")
	{
		// Google sign-in via Firebase ID token
		authGroup.POST("/google-user", func(c *gin.Context) {
			auth.GoogleUserLoginHandler(c.Writer, c.Request, db, sessions)
		})

		authGroup.POST("/guest", auth.CreateGuestUser(db))
	}
}
