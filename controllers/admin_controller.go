package controllers

import (
	"encoding/json"
	"net/http"

	"projectmatch_server/models"
	"projectmatch_server/services"
)

// AdminController handles round control and the administrative overview
type AdminController struct {
	Negotiation *services.NegotiationService
	Projects    *services.ProjectService
	Users       *services.UserService
}

// NewAdminController creates a new AdminController instance
func NewAdminController(negotiationService *services.NegotiationService, projectService *services.ProjectService, userService *services.UserService) *AdminController {
	return &AdminController{Negotiation: negotiationService, Projects: projectService, Users: userService}
}

// RoundStatus reports the current round to anyone
func (ac *AdminController) RoundStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ac.Negotiation.RoundStatus())
}

// StartRound opens the next negotiation round
func (ac *AdminController) StartRound(w http.ResponseWriter, r *http.Request) {
	if !ac.requireAdmin(w, r) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ac.Negotiation.StartRound())
}

// CloseRound closes the current negotiation round
func (ac *AdminController) CloseRound(w http.ResponseWriter, r *http.Request) {
	if !ac.requireAdmin(w, r) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ac.Negotiation.CloseRound())
}

// Status returns a roster and ledger overview for the admin dashboard
func (ac *AdminController) Status(w http.ResponseWriter, r *http.Request) {
	session, ok := ac.Users.Resolve(r.URL.Query().Get("session_id"))
	if !ok || session.Role != models.RoleAdmin {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}

	rejected, decisions := ac.Negotiation.LedgerCounts()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"round":             ac.Negotiation.RoundStatus(),
		"groups":            len(ac.Users.ListGroups()),
		"companies":         len(ac.Users.ListCompanies()),
		"projects":          len(ac.Projects.ListProjects()),
		"finalized_matches": ac.Negotiation.FinalizedMatches(),
		"rejected_pairs":    rejected,
		"match_decisions":   decisions,
	})
}

func (ac *AdminController) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	var request struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return false
	}
	session, ok := ac.Users.Resolve(request.SessionID)
	if !ok || session.Role != models.RoleAdmin {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return false
	}
	return true
}
