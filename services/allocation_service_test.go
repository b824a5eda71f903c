package services

import (
	"testing"

	"projectmatch_server/models"

	"github.com/stretchr/testify/require"
)

func group(name, email string) models.Group {
	return models.Group{Name: name, Email: email}
}

func project(id, name, company string, capacity int) models.Project {
	return models.Project{ID: id, CompanyEmail: company, Name: name, Capacity: capacity, Active: true}
}

func groupPrefs(email string, ids ...string) models.GroupPreferences {
	return models.GroupPreferences{GroupEmail: email, ProjectIDsRanked: ids}
}

func projectPrefs(id string, emails ...string) models.ProjectPreferences {
	return models.ProjectPreferences{ProjectID: id, GroupEmailsRanked: emails}
}

func TestBuildProjectScores(t *testing.T) {
	t.Run("applies rank, top-three and short-list adjustments", func(t *testing.T) {
		scores := BuildProjectScores([]models.ProjectPreferences{
			projectPrefs("p1", "a", "b", "c", "d"),
		})

		// Four entries: no short-list discount, ranks 0-2 get the
		// top-three discount.
		require.Equal(t, 5, scores["p1"]["a"])
		require.Equal(t, 15, scores["p1"]["b"])
		require.Equal(t, 25, scores["p1"]["c"])
		require.Equal(t, 40, scores["p1"]["d"])
	})

	t.Run("short lists discount every entry", func(t *testing.T) {
		scores := BuildProjectScores([]models.ProjectPreferences{
			projectPrefs("p1", "a", "b"),
		})

		require.Equal(t, 2, scores["p1"]["a"])
		require.Equal(t, 12, scores["p1"]["b"])
	})

	t.Run("unranked groups have no score", func(t *testing.T) {
		scores := BuildProjectScores([]models.ProjectPreferences{
			projectPrefs("p1", "a"),
		})

		_, ok := scores["p1"]["z"]
		require.False(t, ok)
	})

	t.Run("empty list yields empty table", func(t *testing.T) {
		scores := BuildProjectScores([]models.ProjectPreferences{projectPrefs("p1")})
		require.Empty(t, scores["p1"])
	})
}

func TestAllocate(t *testing.T) {
	t.Run("better scored group wins a contested project", func(t *testing.T) {
		groups := []models.Group{group("G1", "g1"), group("G2", "g2")}
		projects := []models.Project{project("p", "Platform", "c1", 1)}
		gp := []models.GroupPreferences{groupPrefs("g1", "p"), groupPrefs("g2", "p")}
		pp := []models.ProjectPreferences{projectPrefs("p", "g1", "g2")}

		results := Allocate(groups, projects, gp, pp)

		// g1 scores 2, g2 scores 12; g1 holds the slot and g2 falls
		// through to the fallback, which reuses the occupied project.
		require.Len(t, results, 2)
		require.Equal(t, "g1", results[0].GroupEmail)
		require.Equal(t, "p", results[0].ProjectID)
		require.Equal(t, "g2", results[1].GroupEmail)
		require.Equal(t, "p", results[1].ProjectID)
	})

	t.Run("eviction requeues the displaced group", func(t *testing.T) {
		groups := []models.Group{group("G2", "g2"), group("G1", "g1")}
		projects := []models.Project{
			project("p", "Platform", "c1", 1),
			project("q", "Query", "c1", 1),
		}
		gp := []models.GroupPreferences{
			groupPrefs("g2", "p", "q"),
			groupPrefs("g1", "p"),
		}
		pp := []models.ProjectPreferences{
			projectPrefs("p", "g1", "g2"),
			projectPrefs("q", "g2"),
		}

		results := Allocate(groups, projects, gp, pp)

		// g2 grabs p first (registration order), then g1's better score
		// evicts it and g2 settles on q.
		require.Len(t, results, 2)
		byGroup := map[string]string{}
		for _, m := range results {
			byGroup[m.GroupEmail] = m.ProjectID
		}
		require.Equal(t, "p", byGroup["g1"])
		require.Equal(t, "q", byGroup["g2"])
	})

	t.Run("deterministic across reruns", func(t *testing.T) {
		groups := []models.Group{group("G1", "g1"), group("G2", "g2"), group("G3", "g3")}
		projects := []models.Project{
			project("p", "Platform", "c1", 1),
			project("q", "Query", "c2", 2),
		}
		gp := []models.GroupPreferences{
			groupPrefs("g1", "p", "q"),
			groupPrefs("g2", "p", "q"),
			groupPrefs("g3", "q", "p"),
		}
		pp := []models.ProjectPreferences{
			projectPrefs("p", "g2", "g1", "g3"),
			projectPrefs("q", "g3", "g1", "g2"),
		}

		first := Allocate(groups, projects, gp, pp)
		second := Allocate(groups, projects, gp, pp)
		require.Equal(t, first, second)
	})

	t.Run("no group appears twice", func(t *testing.T) {
		groups := []models.Group{group("G1", "g1"), group("G2", "g2"), group("G3", "g3")}
		projects := []models.Project{
			project("p", "Platform", "c1", 1),
			project("q", "Query", "c2", 1),
			project("r", "Runtime", "c3", 1),
		}
		gp := []models.GroupPreferences{
			groupPrefs("g1", "p", "q", "r"),
			groupPrefs("g2", "p", "q", "r"),
			groupPrefs("g3", "p", "q", "r"),
		}
		pp := []models.ProjectPreferences{
			projectPrefs("p", "g1", "g2", "g3"),
			projectPrefs("q", "g1", "g2", "g3"),
			projectPrefs("r", "g1", "g2", "g3"),
		}

		results := Allocate(groups, projects, gp, pp)

		require.Len(t, results, 3)
		seen := map[string]bool{}
		for _, m := range results {
			require.False(t, seen[m.GroupEmail])
			seen[m.GroupEmail] = true
		}
	})

	t.Run("capacity admits multiple holders", func(t *testing.T) {
		groups := []models.Group{group("G1", "g1"), group("G2", "g2")}
		projects := []models.Project{project("p", "Platform", "c1", 2)}
		gp := []models.GroupPreferences{groupPrefs("g1", "p"), groupPrefs("g2", "p")}
		pp := []models.ProjectPreferences{projectPrefs("p", "g1", "g2")}

		results := Allocate(groups, projects, gp, pp)

		require.Len(t, results, 2)
		for _, m := range results {
			require.Equal(t, "p", m.ProjectID)
		}
	})

	t.Run("zero capacity behaves as one slot", func(t *testing.T) {
		groups := []models.Group{group("G1", "g1"), group("G2", "g2")}
		projects := []models.Project{
			{ID: "p", CompanyEmail: "c1", Name: "Platform", Capacity: 0, Active: true},
			project("q", "Query", "c1", 1),
		}
		gp := []models.GroupPreferences{
			groupPrefs("g1", "p", "q"),
			groupPrefs("g2", "p", "q"),
		}
		pp := []models.ProjectPreferences{
			projectPrefs("p", "g1", "g2"),
			projectPrefs("q", "g1", "g2"),
		}

		results := Allocate(groups, projects, gp, pp)

		byGroup := map[string]string{}
		for _, m := range results {
			byGroup[m.GroupEmail] = m.ProjectID
		}
		require.Equal(t, "p", byGroup["g1"])
		require.Equal(t, "q", byGroup["g2"])
	})

	t.Run("inactive and unknown projects are skipped in the loop", func(t *testing.T) {
		groups := []models.Group{group("G1", "g1")}
		projects := []models.Project{
			{ID: "dead", CompanyEmail: "c1", Name: "Dead", Capacity: 1, Active: false},
			project("q", "Query", "c1", 1),
		}
		gp := []models.GroupPreferences{groupPrefs("g1", "ghost", "dead", "q")}
		pp := []models.ProjectPreferences{
			projectPrefs("dead", "g1"),
			projectPrefs("q", "g1"),
		}

		results := Allocate(groups, projects, gp, pp)

		require.Len(t, results, 1)
		require.Equal(t, "q", results[0].ProjectID)
	})

	t.Run("fallback fills an empty project first", func(t *testing.T) {
		groups := []models.Group{group("G1", "g1")}
		projects := []models.Project{project("p", "Platform", "c1", 1)}
		// g1 has preferences but p never ranked it: the loop leaves g1
		// free and the fallback hands it the untouched project.
		gp := []models.GroupPreferences{groupPrefs("g1", "p")}
		pp := []models.ProjectPreferences{projectPrefs("p")}

		results := Allocate(groups, projects, gp, pp)

		require.Len(t, results, 1)
		require.Equal(t, "g1", results[0].GroupEmail)
		require.Equal(t, "p", results[0].ProjectID)
	})

	t.Run("fallback without any score lands on the first project", func(t *testing.T) {
		groups := []models.Group{group("G1", "g1"), group("G2", "g2")}
		projects := []models.Project{project("p", "Platform", "c1", 1)}
		gp := []models.GroupPreferences{groupPrefs("g1", "p")}
		pp := []models.ProjectPreferences{projectPrefs("p", "g1")}

		results := Allocate(groups, projects, gp, pp)

		// g2 has no preferences and no score anywhere; it still gets the
		// roster's first project as a last resort.
		require.Len(t, results, 2)
		byGroup := map[string]string{}
		for _, m := range results {
			byGroup[m.GroupEmail] = m.ProjectID
		}
		require.Equal(t, "p", byGroup["g1"])
		require.Equal(t, "p", byGroup["g2"])
	})

	t.Run("results sorted by group email", func(t *testing.T) {
		groups := []models.Group{group("GZ", "z@g"), group("GA", "a@g")}
		projects := []models.Project{
			project("p", "Platform", "c1", 1),
			project("q", "Query", "c1", 1),
		}
		gp := []models.GroupPreferences{
			groupPrefs("z@g", "p"),
			groupPrefs("a@g", "q"),
		}
		pp := []models.ProjectPreferences{
			projectPrefs("p", "z@g"),
			projectPrefs("q", "a@g"),
		}

		results := Allocate(groups, projects, gp, pp)

		require.Len(t, results, 2)
		require.Equal(t, "a@g", results[0].GroupEmail)
		require.Equal(t, "z@g", results[1].GroupEmail)
	})

	t.Run("empty rosters produce no matches", func(t *testing.T) {
		require.Empty(t, Allocate(nil, nil, nil, nil))
		require.Empty(t, Allocate([]models.Group{group("G1", "g1")}, nil, nil, nil))
	})
}
