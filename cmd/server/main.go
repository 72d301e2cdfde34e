package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/vincentkoh/portfolio-backend/internal/config"
	"github.com/vincentkoh/portfolio-backend/internal/handlers"
	"github.com/vincentkoh/portfolio-backend/internal/middleware"
	"github.com/vincentkoh/portfolio-backend/internal/routes"
	"github.com/vincentkoh/portfolio-backend/internal/session"
	"github.com/vincentkoh/portfolio-backend/internal/storage"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Storage: Postgres when configured, otherwise in-memory
	var store storage.Storage
	if cfg.PostgresURI != "" {
		log.Println("Connecting to PostgreSQL...")
		pg, err := storage.NewPostgresStorage(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL:", err)
		}
		defer pg.Close()
		store = pg
		log.Println("✅ Connected to PostgreSQL")
	} else {
		store = storage.NewMemStorage()
		log.Println("Using in-memory storage (data is lost on restart)")
	}

	// Sessions: Redis when configured, otherwise in-memory
	var sessions session.Store
	if cfg.RedisURI != "" {
		log.Println("Connecting to Redis...")
		rs, err := session.NewRedis(cfg.RedisURI)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer rs.Close()
		sessions = rs
		log.Println("✅ Connected to Redis")
	} else {
		sessions = session.NewMemory()
		log.Println("Using in-memory session store")
	}

	h := handlers.New(store, sessions, cfg.IsProduction())

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.Setup(r, h, sessions, store)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Portfolio backend running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}
