package services

import (
	"log"

	"projectmatch_server/models"

	"github.com/google/uuid"
)

// UserService handles registration, login and session resolution for all
// three roles.
type UserService struct {
	State *StateService
}

// RegisterGroup creates a group account. Emails are unique across all roles.
func (us *UserService) RegisterGroup(name, email, password string) (bool, string) {
	return us.register(name, email, password, models.RoleGroup)
}

// RegisterCompany creates a company account.
func (us *UserService) RegisterCompany(name, email, password string) (bool, string) {
	return us.register(name, email, password, models.RoleCompany)
}

func (us *UserService) register(name, email, password string, role models.Role) (bool, string) {
	if name == "" || email == "" || password == "" {
		return false, "name, email and password are required"
	}

	message := ""
	ok := us.State.Update(func(s *models.AppState) bool {
		for _, u := range s.Users {
			if u.Email == email {
				message = "An account with this email already exists"
				return false
			}
		}
		s.Users = append(s.Users, models.AuthUser{Email: email, Password: password, Role: role})
		switch role {
		case models.RoleGroup:
			s.Groups = append(s.Groups, models.Group{Name: name, Email: email})
		case models.RoleCompany:
			s.Companies = append(s.Companies, models.Company{Name: name, Email: email})
		}
		return true
	})
	if ok {
		log.Printf("Registered %s account for %s", role, email)
		return true, "Account created successfully"
	}
	return false, message
}

// EnsureAdmin seeds the administrative account if it is missing.
func (us *UserService) EnsureAdmin(email, password string) {
	us.State.Update(func(s *models.AppState) bool {
		for _, u := range s.Users {
			if u.Email == email {
				return false
			}
		}
		s.Users = append(s.Users, models.AuthUser{Email: email, Password: password, Role: models.RoleAdmin})
		return true
	})
}

// Login checks credentials and issues a session id on success.
func (us *UserService) Login(email, password string) (string, models.Session, bool) {
	sessionID := ""
	var session models.Session
	us.State.Update(func(s *models.AppState) bool {
		for _, u := range s.Users {
			if u.Email == email && u.Password == password {
				sessionID = uuid.New().String()
				session = models.Session{Email: u.Email, Role: u.Role}
				s.Sessions[sessionID] = session
				return true
			}
		}
		return false
	})
	if sessionID == "" {
		return "", models.Session{}, false
	}
	log.Printf("Login success for %s (%s)", email, session.Role)
	return sessionID, session, true
}

// Resolve looks up the identity behind a session id.
func (us *UserService) Resolve(sessionID string) (models.Session, bool) {
	var session models.Session
	found := false
	us.State.View(func(s *models.AppState) {
		session, found = s.Sessions[sessionID]
	})
	return session, found
}

// GroupByEmail returns the registered group for the email, if any.
func (us *UserService) GroupByEmail(email string) (models.Group, bool) {
	var group models.Group
	found := false
	us.State.View(func(s *models.AppState) {
		if g := s.FindGroup(email); g != nil {
			group, found = *g, true
		}
	})
	return group, found
}

// CompanyByEmail returns the registered company for the email, if any.
func (us *UserService) CompanyByEmail(email string) (models.Company, bool) {
	var company models.Company
	found := false
	us.State.View(func(s *models.AppState) {
		if c := s.FindCompany(email); c != nil {
			company, found = *c, true
		}
	})
	return company, found
}

// ListGroups returns the group roster in registration order.
func (us *UserService) ListGroups() []models.Group {
	groups := []models.Group{}
	us.State.View(func(s *models.AppState) {
		groups = append(groups, s.Groups...)
	})
	return groups
}

// ListCompanies returns the company roster in registration order.
func (us *UserService) ListCompanies() []models.Company {
	companies := []models.Company{}
	us.State.View(func(s *models.AppState) {
		companies = append(companies, s.Companies...)
	})
	return companies
}
