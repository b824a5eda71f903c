package services

import (
	"log"

	"projectmatch_server/models"

	"github.com/google/uuid"
)

// ProjectService manages the project roster and both preference lists.
type ProjectService struct {
	State *StateService
}

// AddProject creates an active project owned by companyEmail. A capacity of
// zero (or less) is normalized to 1 before the project can receive any
// proposal.
func (ps *ProjectService) AddProject(companyEmail, name, description string, capacity int) (models.Project, bool) {
	if name == "" {
		return models.Project{}, false
	}
	if capacity < 1 {
		capacity = 1
	}

	project := models.Project{
		ID:           uuid.New().String(),
		CompanyEmail: companyEmail,
		Name:         name,
		Description:  description,
		Capacity:     capacity,
		Active:       true,
	}
	ok := ps.State.Update(func(s *models.AppState) bool {
		if s.FindCompany(companyEmail) == nil {
			return false
		}
		s.Projects = append(s.Projects, project)
		return true
	})
	if !ok {
		return models.Project{}, false
	}
	log.Printf("Project %s (%s) created by %s", project.Name, project.ID, companyEmail)
	return project, true
}

// ListProjects returns every project in creation order.
func (ps *ProjectService) ListProjects() []models.Project {
	projects := []models.Project{}
	ps.State.View(func(s *models.AppState) {
		projects = append(projects, s.Projects...)
	})
	return projects
}

// ProjectsByCompany returns the projects owned by companyEmail.
func (ps *ProjectService) ProjectsByCompany(companyEmail string) []models.Project {
	projects := []models.Project{}
	ps.State.View(func(s *models.AppState) {
		for _, p := range s.Projects {
			if p.CompanyEmail == companyEmail {
				projects = append(projects, p)
			}
		}
	})
	return projects
}

// SetGroupPreferences replaces the group's ranked wishlist wholesale.
// Projects omitted from the new list lose whatever rank they had.
func (ps *ProjectService) SetGroupPreferences(groupEmail string, projectIDs []string) bool {
	return ps.State.Update(func(s *models.AppState) bool {
		if s.FindGroup(groupEmail) == nil {
			return false
		}
		for i := range s.GroupPrefs {
			if s.GroupPrefs[i].GroupEmail == groupEmail {
				s.GroupPrefs[i].ProjectIDsRanked = projectIDs
				return true
			}
		}
		s.GroupPrefs = append(s.GroupPrefs, models.GroupPreferences{
			GroupEmail:       groupEmail,
			ProjectIDsRanked: projectIDs,
		})
		return true
	})
}

// GroupPreferences returns the group's current ranked list, empty when unset.
func (ps *ProjectService) GroupPreferences(groupEmail string) []string {
	prefs := []string{}
	ps.State.View(func(s *models.AppState) {
		for _, gp := range s.GroupPrefs {
			if gp.GroupEmail == groupEmail {
				prefs = append(prefs, gp.ProjectIDsRanked...)
				return
			}
		}
	})
	return prefs
}

// SetProjectPreferences replaces a project's ranked candidate list. Only the
// owning company may set it.
func (ps *ProjectService) SetProjectPreferences(companyEmail, projectID string, groupEmails []string) bool {
	return ps.State.Update(func(s *models.AppState) bool {
		project := s.FindProject(projectID)
		if project == nil || project.CompanyEmail != companyEmail {
			return false
		}
		for i := range s.ProjectPrefs {
			if s.ProjectPrefs[i].ProjectID == projectID {
				s.ProjectPrefs[i].GroupEmailsRanked = groupEmails
				return true
			}
		}
		s.ProjectPrefs = append(s.ProjectPrefs, models.ProjectPreferences{
			ProjectID:         projectID,
			GroupEmailsRanked: groupEmails,
		})
		return true
	})
}

// ProjectPreferences returns a project's current ranked candidate list.
func (ps *ProjectService) ProjectPreferences(projectID string) []string {
	prefs := []string{}
	ps.State.View(func(s *models.AppState) {
		for _, pp := range s.ProjectPrefs {
			if pp.ProjectID == projectID {
				prefs = append(prefs, pp.GroupEmailsRanked...)
				return
			}
		}
	})
	return prefs
}
