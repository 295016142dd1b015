package main

import (
	"inventario_web/internal/config" // Custom import path (Config)
	"inventario_web/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Create or update the users and productos tables
}
