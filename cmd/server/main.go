package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/guimashan/platfrom-sub000/internal/catalog"
	"github.com/guimashan/platfrom-sub000/internal/config"
	"github.com/guimashan/platfrom-sub000/internal/db"
	"github.com/guimashan/platfrom-sub000/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	bot, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load bot configuration: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Compiled-in keyword table, optionally shadowed by a hot-reloaded
	// override snapshot.
	cat := catalog.New()
	if cfg.CatalogOverrideFile != "" {
		go func() {
			if err := cat.Watch(ctx, cfg.CatalogOverrideFile); err != nil {
				log.Printf("Catalog override watcher stopped: %v", err)
			}
		}()
	}

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, bot, cat); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
