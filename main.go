package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"vetapp-api/config"
	"vetapp-api/internal/app"
	"vetapp-api/internal/database"
	"vetapp-api/internal/notification"
	"vetapp-api/internal/server"

	_ "vetapp-api/docs" // Import generated docs (created by swag init)
)

// @title           VetApp API
// @version         1.0
// @description     Veterinary clinic management service: owners, pets,
// @description     appointments, clinical history, prescriptions and billing.

// @contact.name   API Support
// @contact.email  soporte@vetapp.example.com

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		// Caching is best effort; the API serves from Postgres without it.
		log.Printf("WARN: Failed to connect to Redis: %v. Continuing without cache.", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(dbPool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	sender := notification.NewSMTPSender(cfg.Mail)

	application := app.New(cfg, dbPool, redisClient, sender)

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")
	log.Println("Application gracefully stopped.")
}
