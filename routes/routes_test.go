package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"projectmatch_server/models"
	"projectmatch_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *mux.Router
	t      *testing.T
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := &services.FileSnapshotStore{Path: filepath.Join(t.TempDir(), "state.json")}
	state := services.NewStateService(store)
	userService := &services.UserService{State: state}
	projectService := &services.ProjectService{State: state}
	negotiationService := &services.NegotiationService{State: state}
	userService.EnsureAdmin("admin@system", "admin")

	r := mux.NewRouter()
	RegisterUserRoutes(r, userService)
	RegisterProjectRoutes(r, projectService, userService)
	RegisterMatchRoutes(r, negotiationService, userService)
	RegisterAdminRoutes(r, negotiationService, projectService, userService)
	return &testServer{router: r, t: t}
}

func (ts *testServer) post(path string, body map[string]interface{}) *httptest.ResponseRecorder {
	ts.t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(ts.t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) get(path string) *httptest.ResponseRecorder {
	ts.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (ts *testServer) login(email, password string) string {
	ts.t.Helper()
	rec := ts.post("/api/login", map[string]interface{}{"email": email, "password": password})
	require.Equal(ts.t, http.StatusOK, rec.Code)
	body := decode(ts.t, rec)
	require.Equal(ts.t, true, body["ok"])
	return body["session_id"].(string)
}

func TestNegotiationOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	// Register one group and one company.
	rec := ts.post("/api/group", map[string]interface{}{
		"name": "Alpha", "email": "alpha@groups.test", "password": "pw",
	})
	require.Equal(t, true, decode(t, rec)["ok"])
	rec = ts.post("/api/company", map[string]interface{}{
		"name": "Acme", "email": "owner@acme.test", "password": "pw",
	})
	require.Equal(t, true, decode(t, rec)["ok"])

	groupSession := ts.login("alpha@groups.test", "pw")
	companySession := ts.login("owner@acme.test", "pw")
	adminSession := ts.login("admin@system", "admin")

	// Company creates a project and ranks the group on it.
	rec = ts.post("/api/company/projects", map[string]interface{}{
		"session_id": companySession, "name": "Backend", "capacity": 1,
	})
	body := decode(t, rec)
	require.Equal(t, true, body["ok"])
	projectID := body["project"].(map[string]interface{})["id"].(string)

	rec = ts.post("/api/project/preferences", map[string]interface{}{
		"session_id": companySession, "project_id": projectID,
		"group_emails_ranked": []string{"alpha@groups.test"},
	})
	require.Equal(t, true, decode(t, rec)["ok"])

	rec = ts.post("/api/group/preferences", map[string]interface{}{
		"session_id": groupSession, "project_ids_ranked": []string{projectID},
	})
	require.Equal(t, true, decode(t, rec)["ok"])

	// The unfiltered allocation pairs them already.
	rec = ts.get("/api/match")
	var all []models.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	require.Equal(t, projectID, all[0].ProjectID)

	// Decisions are refused while no round is open.
	rec = ts.post("/api/match/accept", map[string]interface{}{
		"session_id": groupSession,
	})
	require.Equal(t, false, decode(t, rec)["ok"])

	// Only the admin can open a round.
	rec = ts.post("/api/admin/round/start", map[string]interface{}{
		"session_id": groupSession,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.post("/api/admin/round/start", map[string]interface{}{
		"session_id": adminSession,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.get("/api/round/status")
	var status models.RoundStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Equal(t, 1, status.RoundNumber)
	require.True(t, status.RoundOpen)

	// Both sides accept; the pair finalizes and leaves the visible view.
	rec = ts.post("/api/match/accept", map[string]interface{}{
		"session_id": companySession, "project_id": projectID,
	})
	require.Equal(t, true, decode(t, rec)["ok"])
	rec = ts.post("/api/match/accept", map[string]interface{}{
		"session_id": groupSession,
	})
	require.Equal(t, true, decode(t, rec)["ok"])

	rec = ts.get("/api/me/final?session_id=" + groupSession)
	var finals []models.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &finals))
	require.Len(t, finals, 1)
	require.Equal(t, projectID, finals[0].ProjectID)

	rec = ts.get("/api/me/match?session_id=" + groupSession)
	var visible []models.VisibleMatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visible))
	require.Empty(t, visible)
}

func TestSessionChecks(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.get("/api/me/match?session_id=bogus")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.get("/api/group/me?session_id=bogus")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.post("/api/company/projects", map[string]interface{}{
		"session_id": "bogus", "name": "Backend",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.get("/api/admin/status?session_id=bogus")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
