package main

import (
	"context"
	"log"
	"net/http"

	"smart-wedding-backend/internal/config"
	"smart-wedding-backend/internal/database"
	"smart-wedding-backend/internal/feed"
	"smart-wedding-backend/internal/handlers"
	"smart-wedding-backend/internal/middleware"
	"smart-wedding-backend/internal/supabase"
	"smart-wedding-backend/internal/uploader"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Supabase clients: PostgREST for reads, storage for blobs.
	readClient, err := supabase.NewReadClient(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	// Direct database connection for writes and the insert listener.
	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	// Run migrations
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	// Realtime pipeline: photo inserts flow from the database trigger
	// through the listener into the distributor, out to SSE viewers.
	distributor := feed.NewDistributor()
	listener := supabase.NewPhotoListener(cfg.DatabaseURL, distributor)
	go func() {
		if err := listener.Run(context.Background()); err != nil {
			log.Printf("Photo listener stopped: %v", err)
		}
	}()

	// Upload pipeline
	orchestrator := uploader.NewOrchestrator(storageClient, dbClient, uploader.Options{})

	// Initialize handlers
	weddingsHandler := handlers.NewWeddingsHandler(readClient)
	photosHandler := handlers.NewPhotosHandler(readClient, orchestrator)
	galleryHandler := handlers.NewGalleryHandler(readClient, readClient, distributor)
	guestbookHandler := handlers.NewGuestbookHandler(readClient, readClient, dbClient)
	moderationHandler := handlers.NewModerationHandler(dbClient)

	// Setup router
	router := gin.Default()

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api/v1")

	// Wedding pages
	api.GET("/weddings/:slug", weddingsHandler.GetWedding)

	// Gallery: bounded snapshot plus live SSE stream
	api.GET("/weddings/:slug/photos", galleryHandler.GetGallery)
	api.GET("/weddings/:slug/photos/stream", galleryHandler.StreamGallery)

	// Guest uploads
	api.POST("/weddings/:slug/photos", photosHandler.Upload)
	api.GET("/uploads/:batch_id", photosHandler.GetBatch)
	api.GET("/uploads/:batch_id/stream", photosHandler.StreamBatch)

	// Guestbook
	api.GET("/weddings/:slug/guestbook", guestbookHandler.ListEntries)
	api.POST("/weddings/:slug/guestbook", guestbookHandler.SignGuestbook)

	// Moderation (host JWT)
	api.PATCH("/photos/:photo_id/visibility", middleware.HostAuth(cfg), moderationHandler.SetVisibility)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
