package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lucasrivero/boleta-api/cart"
	"github.com/lucasrivero/boleta-api/catalog"
	"github.com/lucasrivero/boleta-api/history"
	"github.com/lucasrivero/boleta-api/persist"
	"github.com/lucasrivero/boleta-api/routes"
)

func main() {
	log.Println("✅ Starting register...")

	// Load environment variables
	_ = godotenv.Load()

	// Load the product catalog once at startup. A missing or partially
	// malformed file degrades to fewer sellable products, never a crash.
	catalogFile := envOr("CATALOG_FILE", "lista_de_productos.txt")
	cat, err := catalog.Load(catalogFile)
	if err != nil {
		log.Printf("⚠️ Could not read %s: %v (starting with an empty catalog)", catalogFile, err)
	}
	log.Printf("📦 Catalog loaded: %d products", len(cat))

	receiptsDir := envOr("RECEIPTS_DIR", "boletas")
	partitionByDate := os.Getenv("RECEIPTS_FLAT") != "true"

	store := cart.NewStore(cat)
	saver := persist.NewSaver(cat, receiptsDir, partitionByDate)
	hist := history.NewStore(envOr("CUSTOMERS_FILE", "clientes.txt"), history.DefaultLimit)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve saved receipts and their QR images
	r.Static("/boletas", receiptsDir)

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog: cat,
		Cart:    store,
		Saver:   saver,
		History: hist,
	})

	// Start server
	port := envOr("PORT", "8080")
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
