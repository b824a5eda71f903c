package routes

import (
	"projectmatch_server/controllers"
	"projectmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for accounts and sessions under /api
func RegisterUserRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewUserController(userService)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/group", controller.RegisterGroup).Methods("POST")
	api.HandleFunc("/company", controller.RegisterCompany).Methods("POST")
	api.HandleFunc("/login", controller.Login).Methods("POST")
	api.HandleFunc("/group/me", controller.GroupMe).Methods("GET")
	api.HandleFunc("/company/me", controller.CompanyMe).Methods("GET")
	api.HandleFunc("/group/list", controller.ListGroups).Methods("GET")
	api.HandleFunc("/company/list", controller.ListCompanies).Methods("GET")
}
