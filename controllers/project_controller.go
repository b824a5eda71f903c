package controllers

import (
	"encoding/json"
	"net/http"

	"projectmatch_server/models"
	"projectmatch_server/services"
)

// ProjectController handles HTTP requests for projects and preference lists
type ProjectController struct {
	Projects *services.ProjectService
	Users    *services.UserService
}

// NewProjectController creates a new ProjectController instance
func NewProjectController(projectService *services.ProjectService, userService *services.UserService) *ProjectController {
	return &ProjectController{Projects: projectService, Users: userService}
}

// CreateProject handles project creation by the owning company
func (pc *ProjectController) CreateProject(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SessionID   string `json:"session_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Capacity    int    `json:"capacity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	session, ok := pc.Users.Resolve(request.SessionID)
	if !ok || session.Role != models.RoleCompany {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}

	project, created := pc.Projects.AddProject(session.Email, request.Name, request.Description, request.Capacity)
	w.Header().Set("Content-Type", "application/json")
	if !created {
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": false})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":      true,
		"project": project,
	})
}

// ListProjects returns every project
func (pc *ProjectController) ListProjects(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pc.Projects.ListProjects())
}

// SetGroupPreferences replaces the calling group's ranked project list
func (pc *ProjectController) SetGroupPreferences(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SessionID        string   `json:"session_id"`
		ProjectIDsRanked []string `json:"project_ids_ranked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	session, ok := pc.Users.Resolve(request.SessionID)
	if !ok || session.Role != models.RoleGroup {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}

	updated := pc.Projects.SetGroupPreferences(session.Email, request.ProjectIDsRanked)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"ok": updated})
}

// GetGroupPreferences returns the calling group's ranked project list
func (pc *ProjectController) GetGroupPreferences(w http.ResponseWriter, r *http.Request) {
	session, ok := pc.Users.Resolve(r.URL.Query().Get("session_id"))
	if !ok || session.Role != models.RoleGroup {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"project_ids_ranked": pc.Projects.GroupPreferences(session.Email),
	})
}

// SetProjectPreferences replaces a project's ranked candidate list
func (pc *ProjectController) SetProjectPreferences(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SessionID         string   `json:"session_id"`
		ProjectID         string   `json:"project_id"`
		GroupEmailsRanked []string `json:"group_emails_ranked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.ProjectID == "" {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	session, ok := pc.Users.Resolve(request.SessionID)
	if !ok || session.Role != models.RoleCompany {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}

	updated := pc.Projects.SetProjectPreferences(session.Email, request.ProjectID, request.GroupEmailsRanked)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"ok": updated})
}

// GetProjectPreferences returns a project's ranked candidate list to its owner
func (pc *ProjectController) GetProjectPreferences(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("project_id")
	if projectID == "" {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	session, ok := pc.Users.Resolve(r.URL.Query().Get("session_id"))
	if !ok || session.Role != models.RoleCompany {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}

	owned := false
	for _, p := range pc.Projects.ProjectsByCompany(session.Email) {
		if p.ID == projectID {
			owned = true
			break
		}
	}
	if !owned {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"group_emails_ranked": pc.Projects.ProjectPreferences(projectID),
	})
}
