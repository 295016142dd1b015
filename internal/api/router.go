package api

import (
	"html/template" // Template parsing for the embedded views

	"inventario_web/internal/middleware" // Session-auth middleware
	"inventario_web/templates"           // Embedded view files

	"github.com/gin-contrib/sessions"        // Session middleware
	"github.com/gin-contrib/sessions/cookie" // Cookie-backed session store
	"github.com/gin-gonic/gin"               // Gin web framework
	"gorm.io/gorm"                           // GORM ORM library
)

// NewRouter wires the session store, the embedded templates and all routes
func NewRouter(db *gorm.DB, sessionSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance

	// Cookie-backed session signed with the configured secret
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("inventario_session", store))

	// Views ship inside the binary
	r.SetHTMLTemplate(template.Must(template.ParseFS(templates.FS, "*.html")))

	// Public routes
	r.GET("/", IndexHandler())                  // Landing / redirect
	r.GET("/register", ShowRegisterHandler())   // Registration form
	r.POST("/register", RegisterHandler(db))    // Create user
	r.GET("/login", ShowLoginHandler())         // Login form
	r.POST("/login", LoginHandler(db))          // Authenticate
	r.GET("/logout", LogoutHandler())           // Clear session

	// Product routes (require an authenticated session)
	auth := r.Group("/")
	auth.Use(middleware.SessionAuthMiddleware())
	auth.GET("/productos", ListProductosHandler(db))               // List own products
	auth.GET("/agregar_producto", ShowAgregarProductoHandler())    // Add-product form
	auth.POST("/agregar_producto", AgregarProductoHandler(db))     // Create product
	auth.GET("/editar_producto/:id", ShowEditarProductoHandler(db)) // Edit form
	auth.POST("/editar_producto/:id", EditarProductoHandler(db))   // Update own product
	auth.GET("/eliminar_producto/:id", EliminarProductoHandler(db)) // Delete own product
	auth.GET("/producto/:id", VerProductoHandler(db))              // View own product

	return r
}
