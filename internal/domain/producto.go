package domain

// Producto Model
type Producto struct {
	ID          uint    `gorm:"primaryKey"` // Primary key
	Nombre      string  `gorm:"not null"`   // Product name
	Descripcion string  // Free-text description, optional
	Precio      float64 `gorm:"not null"` // Unit price, non-negative
	Cantidad    int     `gorm:"not null"` // Stock quantity, non-negative
	UserID      uint    `gorm:"not null;index"` // Foreign key to the owning User
}

// TableName keeps the table name the schema uses
func (Producto) TableName() string {
	return "productos"
}
