package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/folio/internal/api"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/handlers"
	"github.com/Zachkp/folio/internal/loader"
	"github.com/Zachkp/folio/internal/render"
	"github.com/Zachkp/folio/internal/visits"
)

func main() {
	showStats := flag.Bool("stats", false, "print visitor stats as JSON and exit")
	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	client := api.NewClient(cfg.APIBaseURL, config.NewHTTPClient(cfg.FetchTimeout))
	opts := handlers.Options{
		Title:        cfg.Title,
		DefaultEmail: cfg.DefaultEmail,
	}

	if cfg.TrackingEnabled() {
		store, err := visits.Open(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open visits database: %v", err)
		}
		defer store.Close()

		if *showStats {
			printStats(store)
			return
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := store.Cleanup(ctx); err != nil {
				log.Printf("visits: cleanup failed: %v", err)
			}
		}()
		opts.Visits = store
	} else if *showStats {
		log.Fatal("Visitor tracking is off; no stats to show")
	}

	router := handlers.SetupRoutes(loader.New(client), renderer, opts)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.FetchTimeout + 5*time.Second,
	}

	// Graceful shutdown
	shutdownChannel := make(chan os.Signal, 1)
	signal.Notify(shutdownChannel, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Portfolio listening on %s (API %s)", cfg.Addr(), cfg.APIBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-shutdownChannel
	log.Println("Shutting down server...")

	shutdownContext, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownContext); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func printStats(store *visits.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := store.Stats(ctx)
	if err != nil {
		log.Fatalf("Failed to compute stats: %v", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stats); err != nil {
		log.Fatalf("Failed to encode stats: %v", err)
	}
}
