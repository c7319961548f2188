package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediasocial/internal/common"
	"mediasocial/internal/config"
	"mediasocial/internal/database"
	"mediasocial/internal/di"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.LoadConfig()
	common.SetJWTSecret(cfg.Auth.JWTSecret)

	log.Println("Initializing media service...")
	app, cleanup, err := di.InitializeMediaApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := database.Migrate(app.DB); err != nil {
		cleanup()
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("✅ Database migration completed")

	r := mux.NewRouter()
	r.Use(common.LoggingMiddleware)
	api := r.PathPrefix("/api/v1").Subrouter()
	app.Posts.RegisterRoutes(api)
	app.Comments.RegisterRoutes(api)
	app.Likes.RegisterRoutes(api)
	app.Friends.RegisterRoutes(api)
	app.Chats.RegisterRoutes(api)
	app.Notifications.RegisterRoutes(api)
	app.Themes.RegisterRoutes(api)
	app.Tags.RegisterRoutes(api)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MediaServicePort),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("🚀 media service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ graceful shutdown failed: %v", err)
	}
	// drains queued notifications before the pool closes
	cleanup()
	log.Println("Server stopped")
}
