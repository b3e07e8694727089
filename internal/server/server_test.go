package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/meal-master-api/internal/auth"
	"github.com/franciscosanchezn/meal-master-api/internal/config"
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const testSecret = "test-jwt-secret-key-32-characters"

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		Host:           "127.0.0.1",
		Port:           0,
		DBDriver:       "sqlite",
		DBPath:         ":memory:",
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

func TestModuleGraphIsComplete(t *testing.T) {
	err := fx.ValidateApp(fx.Supply(testConfig()), Module)
	require.NoError(t, err)
}

type testApp struct {
	router   *gin.Engine
	users    services.UserService
	sessions *auth.SessionManager
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var a testApp
	app := fxtest.New(t,
		fx.Supply(testConfig()),
		DatabaseModule,
		ServiceModule,
		ControllerModule,
		fx.Provide(NewRouter),
		fx.Populate(&a.router, &a.users, &a.sessions),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)
	return &a
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, email string) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		token, err := a.sessions.Issue(email, "")
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) makeAdmin(t *testing.T, email string) {
	t.Helper()
	ctx := context.Background()
	_, err := a.users.UpsertUser(ctx, models.UserProfile{Email: email, Name: "Admin"})
	require.NoError(t, err)
	role := models.RoleAdmin
	_, err = a.users.SetUserRole(ctx, email, models.UserPatch{Role: &role})
	require.NoError(t, err)
}

func TestPublicRoutes(t *testing.T) {
	a := setupTestApp(t)

	rec := a.do(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello from meal master Server..", rec.Body.String())

	rec = a.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")

	rec = a.do(t, http.MethodGet, "/no-such-route", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrNotFound, apiErr.Code)

	rec = a.do(t, http.MethodGet, "/membership", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tiers []models.Membership
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tiers))
	assert.Len(t, tiers, 3)
}

func TestRouteGuards(t *testing.T) {
	a := setupTestApp(t)
	a.makeAdmin(t, "admin@example.com")

	meal := gin.H{"meal_title": "Shakshuka", "price": 9.5}

	testCases := []struct {
		name     string
		method   string
		path     string
		body     interface{}
		email    string
		expected int
	}{
		{"session route without cookie", http.MethodGet, "/reviews?email=a@example.com", nil, "", http.StatusUnauthorized},
		{"session route with cookie", http.MethodGet, "/reviews?email=a@example.com", nil, "a@example.com", http.StatusOK},
		{"admin route without cookie", http.MethodPost, "/menu", meal, "", http.StatusUnauthorized},
		{"admin route as member", http.MethodPost, "/menu", meal, "member@example.com", http.StatusForbidden},
		{"admin route as admin", http.MethodPost, "/menu", meal, "admin@example.com", http.StatusOK},
		{"admin listing as admin", http.MethodGet, "/users?page=1&size=10", nil, "admin@example.com", http.StatusOK},
		{"public listing", http.MethodGet, "/all-meals?page=1&size=10", nil, "", http.StatusOK},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(t, tt.method, tt.path, tt.body, tt.email)
			assert.Equal(t, tt.expected, rec.Code, rec.Body.String())
		})
	}
}

func TestCheckAdminRoute(t *testing.T) {
	a := setupTestApp(t)
	a.makeAdmin(t, "boss@example.com")

	rec := a.do(t, http.MethodGet, "/users/admin/boss@example.com", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":true}`, rec.Body.String())
}
