package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/repository"
	"hotel-frontdesk/routes"
	"hotel-frontdesk/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	// Registry comes up from the rooms document; a missing or corrupt
	// file starts the desk with an empty registry.
	store := repository.NewRoomStore(cfg.DataFile)
	inventory := services.NewInventoryService(store)
	inventory.Load()
	log.Printf("✅ Registry loaded from %s (%d room(s))", cfg.DataFile, inventory.Statistics().TotalRooms)

	// Initialize services
	documents := services.NewDocumentService(cfg.HotelName, cfg.InvoiceDir, cfg.ReceiptDir)
	bookings := services.NewBookingService(inventory, documents)

	// Initialize controllers
	roomController := controllers.NewRoomController(inventory)
	bookingController := controllers.NewBookingController(bookings)

	// Build router
	router := routes.SetupRouter(roomController, bookingController, cfg.CorsOrigins)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	// Flush the registry once the server stops taking requests.
	if err := inventory.Save(); err != nil {
		log.Fatalf("❌ Failed to save registry to %s: %v", cfg.DataFile, err)
	}
	log.Printf("✅ Registry saved to %s, server stopped gracefully", cfg.DataFile)
}
