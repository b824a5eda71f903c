package controllers

import (
	"encoding/json"
	"net/http"

	"projectmatch_server/models"
	"projectmatch_server/services"
)

// MatchController handles HTTP requests for tentative and finalized matches
type MatchController struct {
	Negotiation *services.NegotiationService
	Users       *services.UserService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(negotiationService *services.NegotiationService, userService *services.UserService) *MatchController {
	return &MatchController{Negotiation: negotiationService, Users: userService}
}

// GetAllMatches returns the full unfiltered tentative assignment
func (mc *MatchController) GetAllMatches(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mc.Negotiation.ComputeMatches())
}

// GetMyMatches returns the caller's visible tentative matches with status
func (mc *MatchController) GetMyMatches(w http.ResponseWriter, r *http.Request) {
	session, ok := mc.Users.Resolve(r.URL.Query().Get("session_id"))
	if !ok {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mc.Negotiation.VisibleMatchesFor(session.Email, session.Role))
}

// GetMyFinal returns the caller's finalized matches
func (mc *MatchController) GetMyFinal(w http.ResponseWriter, r *http.Request) {
	session, ok := mc.Users.Resolve(r.URL.Query().Get("session_id"))
	if !ok {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mc.Negotiation.FinalMatchesFor(session.Email, session.Role))
}

// Accept records the caller's acceptance of its visible tentative match
func (mc *MatchController) Accept(w http.ResponseWriter, r *http.Request) {
	mc.decide(w, r, models.DecisionAccept)
}

// Reject permanently bars the caller's visible tentative match
func (mc *MatchController) Reject(w http.ResponseWriter, r *http.Request) {
	mc.decide(w, r, models.DecisionReject)
}

func (mc *MatchController) decide(w http.ResponseWriter, r *http.Request, action string) {
	var request struct {
		SessionID string `json:"session_id"`
		ProjectID string `json:"project_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	session, ok := mc.Users.Resolve(request.SessionID)
	if !ok {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}

	decided := mc.Negotiation.Decide(session.Email, session.Role, action, request.ProjectID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"ok": decided})
}
