package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmaster-api/internal/dto"
	"github.com/yukikurage/taskmaster-api/internal/testutil"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return NewRouter(Dependencies{
		DB:           testutil.NewSeededDB(t),
		SessionStore: cookie.NewStore([]byte("routes-test-secret")),
		Location:     time.UTC,
		Clock:        func() time.Time { return time.Date(2023, 11, 1, 9, 0, 0, 0, time.UTC) },
	})
}

func do(r http.Handler, method, path string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler, username string) []*http.Cookie {
	t.Helper()
	w := do(r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": "grocery",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/tasks", "/api/team", "/api/shifts", "/api/standard-tasks", "/api/auth/me"} {
		w := do(r, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestEmployeeCannotReachManagerRoutes(t *testing.T) {
	r := newTestRouter(t)
	cookies := login(t, r, "john.zehrs")

	cases := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/api/tasks", map[string]any{"title": "x", "assigned_to_id": "u2"}},
		{http.MethodPost, "/api/tasks/daily", map[string]any{"assigned_to_id": "u2", "titles": []string{"FACE AISLES"}}},
		{http.MethodPatch, "/api/tasks/t1", map[string]any{"title": "y"}},
		{http.MethodDelete, "/api/tasks/t1", nil},
		{http.MethodPut, "/api/tasks/t3/verification", map[string]any{"verified": true}},
		{http.MethodPost, "/api/standard-tasks", map[string]any{"title": "z"}},
		{http.MethodPost, "/api/team/u3/notes", map[string]any{"text": "n"}},
		{http.MethodGet, "/api/dashboard", nil},
		{http.MethodGet, "/api/insights/dashboard", nil},
	}
	for _, tc := range cases {
		w := do(r, tc.method, tc.path, tc.body, cookies)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestTaskLifecycleThroughRouter(t *testing.T) {
	r := newTestRouter(t)
	manager := login(t, r, "lamec.zehrs")
	employee := login(t, r, "jane.zehrs")

	w := do(r, http.MethodPost, "/api/tasks", map[string]any{
		"title":          "Build Apple Display",
		"assigned_to_id": "u3",
		"xp_reward":      150,
	}, manager)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(r, http.MethodGet, "/api/tasks", nil, employee)
	require.Equal(t, http.StatusOK, w.Code)
	var focus dto.TaskListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &focus))
	require.Equal(t, 1, focus.TotalCount)
	assert.Equal(t, created.ID, focus.Tasks[0].ID)

	w = do(r, http.MethodPost, "/api/tasks/"+created.ID+"/start", nil, employee)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/tasks/"+created.ID+"/complete", nil, employee)
	require.Equal(t, http.StatusOK, w.Code)
	var completed dto.CompleteTaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &completed))
	assert.Equal(t, 150, completed.XPAwarded)
	require.NotNil(t, completed.Assignee)
	assert.Equal(t, 2550, completed.Assignee.XP)

	w = do(r, http.MethodPut, "/api/tasks/"+created.ID+"/verification", map[string]any{"verified": true}, manager)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/auth/me", nil, employee)
	require.Equal(t, http.StatusOK, w.Code)
	var me dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, 2550, me.XP)
}

func TestLogoutEndsSession(t *testing.T) {
	r := newTestRouter(t)
	cookies := login(t, r, "john.zehrs")

	w := do(r, http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/auth/me", nil, w.Result().Cookies())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
