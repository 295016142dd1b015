package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-contrib/sessions" // Cookie-backed session store
	"github.com/gin-gonic/gin"        // Gin web framework
)

// Session keys shared with the auth handlers
const (
	SessionKeyUserID   = "user_id"  // Authenticated user's id
	SessionKeyUsername = "username" // Authenticated user's name
)

// SessionAuthMiddleware requires an authenticated session and extracts user information
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)              // Get the current session
		userID := session.Get(SessionKeyUserID)     // Read the authenticated user id
		username := session.Get(SessionKeyUsername) // Read the authenticated username
		// Anonymous sessions are sent to the login form
		id, ok := userID.(uint)
		if !ok {
			c.Redirect(http.StatusFound, "/login") // Redirect to login
			c.Abort()                              // Stop the handler chain
			return
		}
		c.Set("userID", id) // Store userID in context
		if name, ok := username.(string); ok {
			c.Set("username", name) // Store username in context
		}
		c.Next() // Proceed to the next handler
	}
}
