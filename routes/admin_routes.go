package routes

import (
	"projectmatch_server/controllers"
	"projectmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes sets up round control and admin overview routes under /api
func RegisterAdminRoutes(r *mux.Router, negotiationService *services.NegotiationService, projectService *services.ProjectService, userService *services.UserService) {
	controller := controllers.NewAdminController(negotiationService, projectService, userService)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/round/status", controller.RoundStatus).Methods("GET")
	api.HandleFunc("/admin/status", controller.Status).Methods("GET")
	api.HandleFunc("/admin/round/start", controller.StartRound).Methods("POST")
	api.HandleFunc("/admin/round/close", controller.CloseRound).Methods("POST")
}
