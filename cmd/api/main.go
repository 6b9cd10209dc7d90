package main

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"ghost-dashboard/internal/dataset"
	"ghost-dashboard/internal/handler"
	"ghost-dashboard/internal/session"
	"ghost-dashboard/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Load the dataset
	ds := dataset.Sample()
	if cfg.DatasetSource == config.SourcePostgres {
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		ds, err = dataset.LoadPostgres(ctx, db)
		cancel()
		db.Close()
		if err != nil {
			log.Fatalf("Failed to load dataset: %v", err)
		}
	}

	store, err := dataset.NewStore(ds)
	if err != nil {
		log.Fatalf("Invalid dataset: %v", err)
	}
	log.Printf("Loaded %s dataset: %d regions, %d locations, %d segmentation rows, %d orders",
		cfg.DatasetSource, len(ds.Regions), len(ds.Locations), len(ds.Segmentation), len(ds.Orders))

	// Initialize sessions
	sessions := session.NewManager(store, cfg.SessionSecret, cfg.SessionTTL)

	// Evict idle sessions in the background
	go sessions.RunSweeper(context.Background(), time.Minute)

	router := handler.SetupRouter(store, sessions, cfg.AllowedOrigins)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
