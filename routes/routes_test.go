package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/expensex/expensex-api/config"
	"github.com/expensex/expensex-api/services"
	"github.com/expensex/expensex-api/store"
	"github.com/expensex/expensex-api/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, adminOnly bool) (*gin.Engine, *store.Store) {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	cfg := &config.Config{
		AllowedOrigins:     []string{"http://localhost:3000"},
		AdminEmails:        []string{"admin@example.com"},
		DirectoryAdminOnly: adminOnly,
	}

	s := store.New(store.Options{Slots: store.NewSQLSlots(db)})
	require.NoError(t, s.Init(context.Background()))

	router := NewRouter(Dependencies{
		Config:    cfg,
		Directory: services.NewDirectoryService(services.NewUserStore(db), cfg.Roles()),
		Store:     s,
	})
	return router, s
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler, email string) {
	t.Helper()
	w := serve(r, http.MethodPost, "/api/session/login", `{"email":"`+email+`","password":"`+store.DefaultBuiltinPassword+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, false)

	w := serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLedgerRequiresSession(t *testing.T) {
	r, _ := newTestRouter(t, false)

	w := serve(r, http.MethodGet, "/api/ledger/expenses", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login(t, r, "user@example.com")

	w = serve(r, http.MethodGet, "/api/ledger/expenses", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/api/session/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/api/ledger/summary", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUsersOpenByDefault(t *testing.T) {
	r, _ := newTestRouter(t, false)

	w := serve(r, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUsersAdminOnly(t *testing.T) {
	r, _ := newTestRouter(t, true)

	w := serve(r, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login(t, r, "user@example.com")
	w = serve(r, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	login(t, r, "admin@example.com")
	w = serve(r, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	r, _ := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/session", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
