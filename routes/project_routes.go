package routes

import (
	"projectmatch_server/controllers"
	"projectmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterProjectRoutes sets up routes for projects and preference lists under /api
func RegisterProjectRoutes(r *mux.Router, projectService *services.ProjectService, userService *services.UserService) {
	controller := controllers.NewProjectController(projectService, userService)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/projects", controller.ListProjects).Methods("GET")
	api.HandleFunc("/company/projects", controller.CreateProject).Methods("POST")
	api.HandleFunc("/group/preferences", controller.SetGroupPreferences).Methods("POST")
	api.HandleFunc("/group/preferences", controller.GetGroupPreferences).Methods("GET")
	api.HandleFunc("/project/preferences", controller.SetProjectPreferences).Methods("POST")
	api.HandleFunc("/project/preferences", controller.GetProjectPreferences).Methods("GET")
}
