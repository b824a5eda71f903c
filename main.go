package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"projectmatch_server/routes"
	"projectmatch_server/services"
	"projectmatch_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const (
	defaultAdminEmail    = "admin@system"
	defaultAdminPassword = "admin"
)

func main() {
	// Load the persisted snapshot (file by default, DynamoDB or S3 via
	// STATE_BACKEND) and build the shared state
	log.Println("Loading state snapshot...")
	store := services.NewSnapshotStoreFromEnv()
	stateService := services.NewStateService(store)
	log.Println("State loaded.")

	// Initialize Services
	userService := &services.UserService{State: stateService}
	projectService := &services.ProjectService{State: stateService}
	negotiationService := &services.NegotiationService{State: stateService}

	// Seed the admin account on first boot
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = defaultAdminEmail
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = defaultAdminPassword
	}
	userService.EnsureAdmin(adminEmail, adminPassword)

	// Socket.IO hub for live round and match events
	hub := socket.NewHub()
	negotiationService.Events = hub
	go func() {
		if err := hub.Server.Serve(); err != nil {
			log.Printf("Socket server error: %v", err)
		}
	}()
	defer hub.Server.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to ProjectMatch")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserRoutes(r, userService)
	routes.RegisterProjectRoutes(r, projectService, userService)
	routes.RegisterMatchRoutes(r, negotiationService, userService)
	routes.RegisterAdminRoutes(r, negotiationService, projectService, userService)
	r.Handle("/socket.io/", hub.Server)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
