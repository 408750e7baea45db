package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"redseal-waitlist/internal/auth"
	"redseal-waitlist/internal/config"
	"redseal-waitlist/internal/demo"
	"redseal-waitlist/internal/models"
	"redseal-waitlist/internal/notify"
	"redseal-waitlist/internal/reference"
	"redseal-waitlist/internal/waitlist"
	"redseal-waitlist/pkg/cache"
	"redseal-waitlist/pkg/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresDB(&database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Country{},
		&models.Region{},
		&models.Trade{},
		&models.WaitlistEntry{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis cache
	redisCache := cache.NewRedisCache(cfg.RedisAddr)

	// Notification clients
	emailClient := notify.NewEmailClient(cfg.ResendAPIKey, cfg.EmailFrom)
	klaviyoClient := notify.NewKlaviyoClient(cfg.KlaviyoAPIKey, cfg.KlaviyoWaitlistListID)
	notifyService := notify.NewService(emailClient, klaviyoClient, cfg.AdminEmail)

	// Initialize repositories and services
	referenceService := reference.NewService(reference.NewRepository(db), redisCache)
	waitlistService := waitlist.NewService(waitlist.NewRepository(db), notifyService)
	authService := auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret)

	demoService := demo.NewService(demo.Config{
		APIKey:        cfg.GeminiAPIKey,
		BaseURL:       cfg.GeminiBaseURL,
		ChatModel:     cfg.ChatModel,
		QuizModel:     cfg.QuizModel,
		QuestionCount: cfg.DemoQuestionCount,
	})
	demoLimiter := demo.NewLimiter(redisCache, cfg.DemoChatLimit)

	// Initialize handlers
	referenceHandler := reference.NewHandler(referenceService)
	waitlistHandler := waitlist.NewHandler(waitlistService)
	notifyHandler := notify.NewHandler(notifyService)
	authHandler := auth.NewHandler(authService)
	demoHandler := demo.NewHandler(demoService, demoLimiter)
	demoWS := demo.NewWSHandler(demoService, demoLimiter, cfg.DemoQuizMode)

	// Setup router
	router := mux.NewRouter()

	// CORS middleware configuration
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "X-Demo-Client"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	handler := corsMiddleware.Handler(router)

	// Public routes
	router.HandleFunc("/api/countries", referenceHandler.GetCountries).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/regions", referenceHandler.GetRegions).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/trades", referenceHandler.GetTrades).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/waitlist", waitlistHandler.Join).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/demo/chat", demoHandler.Chat).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/demo/quiz", demoHandler.Quiz).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket endpoint for the live demo session
	router.HandleFunc("/ws/demo", demoWS.HandleDemo)

	// Admin routes - JWT required
	adminRouter := router.PathPrefix("/api").Subrouter()
	adminRouter.Use(auth.AdminMiddleware(cfg.JWTSecret))

	adminRouter.HandleFunc("/waitlist/lookup", waitlistHandler.Lookup).Methods("GET")
	adminRouter.HandleFunc("/emails/send-waitlist-welcome", notifyHandler.SendWaitlistWelcome).Methods("POST")
	adminRouter.HandleFunc("/emails/admin-waitlist-notification", notifyHandler.AdminWaitlistNotification).Methods("POST")
	adminRouter.HandleFunc("/integrations/klaviyo-sync", notifyHandler.KlaviyoSync).Methods("POST")

	// Setup server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // streaming responses need headroom
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown setup
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown gracefully")
}
