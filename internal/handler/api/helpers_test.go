//go:build unit

package api_test

import (
	"net/http"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// fakeAuth stands in for RequireAuth: any Authorization header authenticates
// as *actor.
func fakeAuth(actor *reservation.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", actor.ID)
		c.Set("user_role", actor.Role)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}
