package userControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sulaiman-Gide/purchaseRecommendation/session"
)

// Usage statistics live in the key-value store per user: how many products
// were viewed, liked, and purchased this session lifetime.

// POST /user/stats/:stat
func IncrementStat(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionID(c)
		if !ok {
			return
		}

		stat := c.Param("stat")
		stats, err := sessions.IncrementStat(c.Request.Context(), userID, stat)
		if err != nil {
			if strings.HasPrefix(err.Error(), "unknown stat") {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stats"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

// GET /user/stats
func GetStats(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionID(c)
		if !ok {
			return
		}

		stats, err := sessions.Stats(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

func sessionID(c *gin.Context) (string, bool) {
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
