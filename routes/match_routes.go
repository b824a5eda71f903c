package routes

import (
	"projectmatch_server/controllers"
	"projectmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match views and decisions under /api
func RegisterMatchRoutes(r *mux.Router, negotiationService *services.NegotiationService, userService *services.UserService) {
	controller := controllers.NewMatchController(negotiationService, userService)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/match", controller.GetAllMatches).Methods("GET")
	api.HandleFunc("/me/match", controller.GetMyMatches).Methods("GET")
	api.HandleFunc("/me/final", controller.GetMyFinal).Methods("GET")
	api.HandleFunc("/match/accept", controller.Accept).Methods("POST")
	api.HandleFunc("/match/reject", controller.Reject).Methods("POST")
}
