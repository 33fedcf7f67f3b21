package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sat-prep/backend/internal/adaptive"
	"github.com/sat-prep/backend/internal/auth"
	"github.com/sat-prep/backend/internal/database"
	"github.com/sat-prep/backend/internal/generator"
	"github.com/sat-prep/backend/internal/irt"
	"github.com/sat-prep/backend/internal/leaderboard"
	"github.com/sat-prep/backend/internal/middleware"
	"github.com/sat-prep/backend/internal/progress"
)

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize handlers
	authHandler := auth.NewHandler(db)

	answerStore := progress.NewStore(db)
	progressHandler := progress.NewHandler(progress.NewService(answerStore))

	questionGen := generator.NewGenerator()
	adaptiveService := adaptive.NewService(answerStore, irt.DefaultConfig())
	adaptiveHandler := adaptive.NewHandler(adaptiveService, questionGen)

	leaderboardHandler := leaderboard.NewHandler(leaderboard.NewStore(db))

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	progressHandler.RegisterRoutes(protected)
	adaptiveHandler.RegisterRoutes(protected)
	leaderboardHandler.RegisterRoutes(protected)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
