package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmaster-api/internal/constants"
	"github.com/yukikurage/taskmaster-api/internal/database"
	"github.com/yukikurage/taskmaster-api/internal/dto"
	"github.com/yukikurage/taskmaster-api/internal/repository"
	"github.com/yukikurage/taskmaster-api/internal/services"
	"github.com/yukikurage/taskmaster-api/internal/testutil"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewSeededDB(t)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, "", "")
	handler := NewAuthHandler(authService)

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func sessionRouter() *gin.Engine {
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	return r
}

func postJSON(r http.Handler, path string, payload any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := sessionRouter()
	r.POST("/api/auth/signup", env.handler.Signup)

	w := postJSON(r, "/api/auth/signup", map[string]string{
		"name":     "New Hire",
		"username": "newhire.zehrs",
		"password": "supersecret",
		"role":     "EMPLOYEE",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newhire.zehrs", response.Username)
	require.Equal(t, "newhire.zehrs@store.com", response.Email)
	require.Equal(t, 1, response.Level)
	require.Equal(t, 0, response.Progress)
	require.NotEmpty(t, w.Result().Cookies(), "expected signup to start a session")
}

func TestAuthHandler_SignupRejections(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := sessionRouter()
	r.POST("/api/auth/signup", env.handler.Signup)

	tests := []struct {
		name    string
		payload map[string]string
		status  int
	}{
		{"missing role", map[string]string{"name": "A", "username": "a.zehrs", "password": "x"}, http.StatusBadRequest},
		{"bad role", map[string]string{"name": "A", "username": "a.zehrs", "password": "x", "role": "OWNER"}, http.StatusBadRequest},
		{"bad suffix", map[string]string{"name": "A", "username": "a.walmart", "password": "x", "role": "EMPLOYEE"}, http.StatusBadRequest},
		{"duplicate", map[string]string{"name": "A", "username": "Lamec.Zehrs", "password": "x", "role": "EMPLOYEE"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/auth/signup", tt.payload)
			require.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := sessionRouter()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(r, "/api/auth/login", map[string]string{
		"username": "LAMEC.zehrs",
		"password": database.DefaultPassword,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "u1", response.ID)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
}

func TestAuthHandler_LoginFailureKeepsSession(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := sessionRouter()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(r, "/api/auth/login", map[string]string{
		"username": "john.zehrs",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
	require.Empty(t, w.Result().Cookies(), "a failed login must not touch the session")
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserID, "u2")

	env.handler.GetCurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "john.zehrs", response.Username)
	require.Equal(t, 20, response.Progress)
	require.Equal(t, 800, response.XPToNextLevel)
}

func TestAuthHandler_GetCurrentUser_Unauthenticated(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	env.handler.GetCurrentUser(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
