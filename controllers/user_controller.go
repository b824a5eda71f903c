package controllers

import (
	"encoding/json"
	"net/http"

	"projectmatch_server/models"
	"projectmatch_server/services"
)

// UserController handles HTTP requests for accounts and sessions
type UserController struct {
	Users *services.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{Users: userService}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterGroup handles group account creation
func (uc *UserController) RegisterGroup(w http.ResponseWriter, r *http.Request) {
	uc.register(w, r, models.RoleGroup)
}

// RegisterCompany handles company account creation
func (uc *UserController) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	uc.register(w, r, models.RoleCompany)
}

func (uc *UserController) register(w http.ResponseWriter, r *http.Request, role models.Role) {
	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var ok bool
	var message string
	if role == models.RoleCompany {
		ok, message = uc.Users.RegisterCompany(request.Name, request.Email, request.Password)
	} else {
		ok, message = uc.Users.RegisterGroup(request.Name, request.Email, request.Password)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":      ok,
		"message": message,
	})
}

// Login handles credential checks and session issuance
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	sessionID, session, ok := uc.Users.Login(request.Email, request.Password)
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":      false,
			"message": "Invalid credentials",
		})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":         true,
		"message":    "Login success",
		"session_id": sessionID,
		"email":      session.Email,
		"role":       session.Role,
	})
}

// GroupMe resolves the calling session to its group record
func (uc *UserController) GroupMe(w http.ResponseWriter, r *http.Request) {
	session, ok := uc.Users.Resolve(r.URL.Query().Get("session_id"))
	if !ok || session.Role != models.RoleGroup {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}
	group, found := uc.Users.GroupByEmail(session.Email)
	if !found {
		http.Error(w, "Group not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(group)
}

// CompanyMe resolves the calling session to its company record
func (uc *UserController) CompanyMe(w http.ResponseWriter, r *http.Request) {
	session, ok := uc.Users.Resolve(r.URL.Query().Get("session_id"))
	if !ok || session.Role != models.RoleCompany {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}
	company, found := uc.Users.CompanyByEmail(session.Email)
	if !found {
		http.Error(w, "Company not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(company)
}

// ListGroups returns the group roster
func (uc *UserController) ListGroups(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(uc.Users.ListGroups())
}

// ListCompanies returns the company roster
func (uc *UserController) ListCompanies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(uc.Users.ListCompanies())
}
