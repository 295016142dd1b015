package api

import (
	"net/http" // HTTP status codes

	"inventario_web/internal/domain"     // Importing domain models
	"inventario_web/internal/middleware" // Session key names
	"inventario_web/internal/utils"      // Password hashing helpers

	"github.com/gin-contrib/sessions" // Cookie-backed session store
	"github.com/gin-gonic/gin"        // Gin web framework
	"github.com/sirupsen/logrus"      // Logging library
	"gorm.io/gorm"                    // GORM ORM library
)

// IndexHandler renders the welcome page, or sends logged-in users to their products
func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c) // Get the current session
		// Already authenticated sessions skip the welcome page
		if session.Get(middleware.SessionKeyUserID) != nil {
			c.Redirect(http.StatusFound, "/productos")
			return
		}
		render(c, http.StatusOK, "index.html", nil) // Welcome page
	}
}

// ShowRegisterHandler renders the registration form
func ShowRegisterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "register.html", nil)
	}
}

// RegisterHandler creates a new user from the submitted form
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username") // Username from the form
		password := c.PostForm("password") // Plaintext password from the form
		email := c.PostForm("email")       // Email from the form

		// Hash the password before it ever reaches storage
		hash, err := utils.HashPassword(password)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to hash password")
			c.String(http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		user := domain.User{Username: username, Password: hash, Email: email}
		// A failed insert leaves nothing behind; username and email are unique columns
		if err := db.Create(&user).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"username": username,    // Attempted username
				"error":    err.Error(), // Error message
			}).Warn("Registration rejected") // Log the rejected attempt
			addFlash(c, "El nombre de usuario o correo ya existe", "danger")
			render(c, http.StatusOK, "register.html", nil) // Re-show the form
			return
		}
		addFlash(c, "Registro exitoso. Por favor inicia sesión.", "success")
		c.Redirect(http.StatusFound, "/login") // On success, continue at the login form
	}
}

// ShowLoginHandler renders the login form
func ShowLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "login.html", nil)
	}
}

// LoginHandler authenticates a user and establishes the session
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username") // Username from the form
		password := c.PostForm("password") // Plaintext password from the form

		var user domain.User // Fetch user from database
		err := db.Where("username = ?", username).First(&user).Error
		// Unknown username and wrong password produce the same notice
		if err != nil || !utils.CheckPassword(user.Password, password) {
			addFlash(c, "Usuario o contraseña incorrectos", "danger")
			render(c, http.StatusOK, "login.html", nil) // Re-show the form
			return
		}
		session := sessions.Default(c)                            // Get the current session
		session.Set(middleware.SessionKeyUserID, user.ID)         // Store the user id
		session.Set(middleware.SessionKeyUsername, user.Username) // Store the username
		session.AddFlash(Flash{Message: "Inicio de sesión exitoso", Category: "success"})
		if err := session.Save(); err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to save session")
			c.String(http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // Authenticated user id
			"username": user.Username, // Authenticated username
		}).Info("User logged in") // Log the login
		c.Redirect(http.StatusFound, "/productos") // Continue at the product list
	}
}

// LogoutHandler clears the session; safe to call without one
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c) // Get the current session
		session.Clear()                // Drop user_id, username and anything pending
		session.AddFlash(Flash{Message: "Has cerrado sesión correctamente", Category: "info"})
		_ = session.Save()                 // Write the cleared cookie
		c.Redirect(http.StatusFound, "/") // Back to the welcome page
	}
}
