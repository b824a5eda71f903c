package services

import (
	"log"
	"sort"

	"projectmatch_server/models"
)

// BuildProjectScores converts each project's ranked candidate list into a
// score per group. Lower is better: rank r (0-indexed) scores (r+1)*10, the
// top three ranks get a 5 point discount, and short lists (two entries or
// fewer) discount every entry by 3 as a commitment bonus. Groups a project
// never ranked have no score at all.
func BuildProjectScores(projectPrefs []models.ProjectPreferences) map[string]map[string]int {
	scores := make(map[string]map[string]int, len(projectPrefs))
	for _, pp := range projectPrefs {
		table := make(map[string]int, len(pp.GroupEmailsRanked))
		for position, groupEmail := range pp.GroupEmailsRanked {
			score := (position + 1) * 10
			if position < 3 {
				score -= 5
			}
			if len(pp.GroupEmailsRanked) <= 2 {
				score -= 3
			}
			table[groupEmail] = score
		}
		scores[pp.ProjectID] = table
	}
	return scores
}

// Allocate computes a fresh tentative assignment of groups to projects.
//
// Groups propose down their own ranked lists in FIFO order. A project accepts
// proposals while it has free capacity slots; once full, a strictly better
// scored group evicts the worst current holder, who rejoins the queue.
// Proposals to unknown or inactive projects, or from groups the project never
// ranked, are discarded and the group moves on to its next preference.
//
// Groups still free after the loop get a fallback assignment in registration
// order: the first project with no holder, else the project that scored them
// best anywhere (ignoring occupancy), else the first project on the roster.
// The fallback can therefore exceed a project's capacity; it guarantees every
// group an answer, not a feasible one.
func Allocate(
	groups []models.Group,
	projects []models.Project,
	groupPrefs []models.GroupPreferences,
	projectPrefs []models.ProjectPreferences,
) []models.MatchResult {
	if len(groups) == 0 || len(projects) == 0 {
		log.Println("Allocation skipped: no groups or no projects")
		return []models.MatchResult{}
	}

	projectByID := make(map[string]*models.Project, len(projects))
	for i := range projects {
		projectByID[projects[i].ID] = &projects[i]
	}
	prefsByGroup := make(map[string][]string, len(groupPrefs))
	for _, gp := range groupPrefs {
		prefsByGroup[gp.GroupEmail] = gp.ProjectIDsRanked
	}
	scores := BuildProjectScores(projectPrefs)

	free := make([]int, 0, len(groups))
	for i := range groups {
		free = append(free, i)
	}
	nextProposal := make([]int, len(groups))
	matched := make([]bool, len(groups))
	holders := make(map[string][]int, len(projects))

	for len(free) > 0 {
		g := free[0]
		free = free[1:]

		prefs := prefsByGroup[groups[g].Email]
		if nextProposal[g] >= len(prefs) {
			continue
		}
		projectID := prefs[nextProposal[g]]
		nextProposal[g]++

		project, ok := projectByID[projectID]
		if !ok || !project.Active {
			free = append(free, g)
			continue
		}
		score, ranked := scores[projectID][groups[g].Email]
		if !ranked {
			free = append(free, g)
			continue
		}

		slots := project.Capacity
		if slots < 1 {
			slots = 1
		}
		current := holders[projectID]
		if len(current) < slots {
			holders[projectID] = append(current, g)
			matched[g] = true
			continue
		}

		// Full: challenge the worst current holder.
		worst := 0
		worstScore := scores[projectID][groups[current[0]].Email]
		for i := 1; i < len(current); i++ {
			if s := scores[projectID][groups[current[i]].Email]; s > worstScore {
				worst, worstScore = i, s
			}
		}
		if score < worstScore {
			evicted := current[worst]
			current[worst] = g
			matched[g] = true
			matched[evicted] = false
			free = append(free, evicted)
		} else {
			free = append(free, g)
		}
	}

	// Fallback pass for groups the proposal loop left unmatched.
	var emptyProjects []string
	for i := range projects {
		if len(holders[projects[i].ID]) == 0 {
			emptyProjects = append(emptyProjects, projects[i].ID)
		}
	}
	var extras []models.MatchResult
	nextEmpty := 0
	for g := range groups {
		if matched[g] {
			continue
		}
		if nextEmpty < len(emptyProjects) {
			holders[emptyProjects[nextEmpty]] = []int{g}
			matched[g] = true
			nextEmpty++
			continue
		}
		bestProject := ""
		bestScore := 0
		for i := range projects {
			if s, ok := scores[projects[i].ID][groups[g].Email]; ok {
				if bestProject == "" || s < bestScore {
					bestProject, bestScore = projects[i].ID, s
				}
			}
		}
		if bestProject == "" {
			bestProject = projects[0].ID
		}
		p := projectByID[bestProject]
		extras = append(extras, models.MatchResult{
			GroupEmail:   groups[g].Email,
			ProjectID:    p.ID,
			ProjectName:  p.Name,
			CompanyEmail: p.CompanyEmail,
		})
	}

	results := make([]models.MatchResult, 0, len(groups))
	for i := range projects {
		p := &projects[i]
		for _, g := range holders[p.ID] {
			results = append(results, models.MatchResult{
				GroupEmail:   groups[g].Email,
				ProjectID:    p.ID,
				ProjectName:  p.Name,
				CompanyEmail: p.CompanyEmail,
			})
		}
	}
	results = append(results, extras...)
	sort.Slice(results, func(i, j int) bool {
		return results[i].GroupEmail < results[j].GroupEmail
	})
	return results
}
