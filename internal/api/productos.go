package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"inventario_web/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// findOwnedProducto looks up a product by id scoped to the session's user.
// The owner filter is the authorization check: rows of other users are
// indistinguishable from rows that do not exist.
func findOwnedProducto(db *gorm.DB, c *gin.Context) (*domain.Producto, bool) {
	userID := c.MustGet("userID").(uint) // Authenticated user id from the middleware
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// A non-numeric id can never match a row
		addFlash(c, "Producto no encontrado", "danger")
		c.Redirect(http.StatusFound, "/productos")
		return nil, false
	}
	var producto domain.Producto
	err = db.Where("id = ? AND user_id = ?", id, userID).First(&producto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		addFlash(c, "Producto no encontrado", "danger")
		c.Redirect(http.StatusFound, "/productos")
		return nil, false
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":     userID,      // Requesting user
			"producto_id": id,          // Requested row
			"error":       err.Error(), // Error message
		}).Error("Product lookup failed") // Log the failure
		c.String(http.StatusInternalServerError, "Error interno del servidor")
		return nil, false
	}
	return &producto, true
}

// parseProductoForm reads the product fields from the submitted form.
// Malformed numeric input is a fatal request error, not a validation notice.
func parseProductoForm(c *gin.Context) (nombre, descripcion string, precio float64, cantidad int, ok bool) {
	nombre = c.PostForm("nombre")           // Product name from the form
	descripcion = c.PostForm("descripcion") // Description from the form
	var err error
	precio, err = strconv.ParseFloat(c.PostForm("precio"), 64) // Price as decimal
	if err != nil {
		c.String(http.StatusBadRequest, "Datos numéricos inválidos")
		return "", "", 0, 0, false
	}
	cantidad, err = strconv.Atoi(c.PostForm("cantidad")) // Quantity as integer
	if err != nil {
		c.String(http.StatusBadRequest, "Datos numéricos inválidos")
		return "", "", 0, 0, false
	}
	return nombre, descripcion, precio, cantidad, true
}

// ListProductosHandler shows the authenticated user's products
func ListProductosHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Authenticated user id from the middleware
		var productos []domain.Producto      // Slice to hold the rows
		// Owner-scoped query: only this user's rows are ever listed
		if err := db.Where("user_id = ?", userID).Find(&productos).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Requesting user
				"error":   err.Error(), // Error message
			}).Error("Product list failed") // Log the failure
			c.String(http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		render(c, http.StatusOK, "productos.html", gin.H{"Productos": productos})
	}
}

// ShowAgregarProductoHandler renders the add-product form
func ShowAgregarProductoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "agregar_producto.html", nil)
	}
}

// AgregarProductoHandler inserts a product owned by the session's user
func AgregarProductoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Authenticated user id from the middleware
		nombre, descripcion, precio, cantidad, ok := parseProductoForm(c)
		if !ok {
			return // Fatal request error already written
		}
		producto := domain.Producto{
			Nombre:      nombre,      // Product name
			Descripcion: descripcion, // Description
			Precio:      precio,      // Unit price
			Cantidad:    cantidad,    // Stock quantity
			UserID:      userID,      // Tag the row with its owner
		}
		if err := db.Create(&producto).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Owning user
				"nombre":  nombre,      // Product name
				"error":   err.Error(), // Error message
			}).Error("Product create failed") // Log the failure
			c.String(http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		addFlash(c, "Producto agregado correctamente", "success")
		c.Redirect(http.StatusFound, "/productos") // Back to the list
	}
}

// ShowEditarProductoHandler renders the edit form pre-filled with the product
func ShowEditarProductoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		producto, ok := findOwnedProducto(db, c)
		if !ok {
			return // Notice and redirect already written
		}
		render(c, http.StatusOK, "editar_producto.html", gin.H{"Producto": producto})
	}
}

// EditarProductoHandler applies the submitted update to an owned product
func EditarProductoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Ownership is checked before the write, not inside it
		producto, ok := findOwnedProducto(db, c)
		if !ok {
			return
		}
		nombre, descripcion, precio, cantidad, ok := parseProductoForm(c)
		if !ok {
			return // Fatal request error already written
		}
		// Map form keeps zero values like cantidad = 0 in the update
		err := db.Model(producto).Updates(map[string]any{
			"nombre":      nombre,      // Product name
			"descripcion": descripcion, // Description
			"precio":      precio,      // Unit price
			"cantidad":    cantidad,    // Stock quantity
		}).Error
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":     producto.UserID, // Owning user
				"producto_id": producto.ID,     // Updated row
				"error":       err.Error(),     // Error message
			}).Error("Product update failed") // Log the failure
			c.String(http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		addFlash(c, "Producto actualizado correctamente", "success")
		c.Redirect(http.StatusFound, "/productos") // Back to the list
	}
}

// EliminarProductoHandler deletes an owned product. The delete is reported as
// successful even when no row matched; the owner-scoped predicate already
// guarantees foreign rows are untouched.
func EliminarProductoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint) // Authenticated user id from the middleware
		id := c.Param("id")                  // Requested row id
		err := db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Producto{}).Error
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":     userID,      // Requesting user
				"producto_id": id,          // Requested row
				"error":       err.Error(), // Error message
			}).Error("Product delete failed") // Log the failure
			c.String(http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		addFlash(c, "Producto eliminado correctamente", "success")
		c.Redirect(http.StatusFound, "/productos") // Back to the list
	}
}

// VerProductoHandler renders the detail view of an owned product
func VerProductoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		producto, ok := findOwnedProducto(db, c)
		if !ok {
			return // Notice and redirect already written
		}
		render(c, http.StatusOK, "ver_producto.html", gin.H{"Producto": producto})
	}
}
