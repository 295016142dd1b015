package api

import (
	"encoding/gob" // Session values cross the cookie as gob

	"inventario_web/internal/middleware" // Session key names

	"github.com/gin-contrib/sessions" // Cookie-backed session store
	"github.com/gin-gonic/gin"        // Gin web framework
)

// Flash is a one-shot notice kept in the session until the next render
type Flash struct {
	Message  string // User-visible text
	Category string // Severity: success, info or danger
}

// The cookie serializer requires custom session values to be registered
func init() {
	gob.Register(Flash{})
}

// addFlash queues a notice on the current session
func addFlash(c *gin.Context, message, category string) {
	session := sessions.Default(c)                                // Get the current session
	session.AddFlash(Flash{Message: message, Category: category}) // Queue the notice
	_ = session.Save()                                            // Write the cookie
}

// takeFlashes drains the pending notices; reading consumes them
func takeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c) // Get the current session
	raw := session.Flashes()       // Read and remove pending notices
	if len(raw) > 0 {
		_ = session.Save() // Persist the removal
	}
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

// render draws a view with the pending flashes and the session identity attached
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = takeFlashes(c) // Pending notices for the alert block
	// Expose the logged-in username to the shared navigation header
	if username := sessions.Default(c).Get(middleware.SessionKeyUsername); username != nil {
		data["Username"] = username
	}
	c.HTML(status, name, data)
}
