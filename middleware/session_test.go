package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/expensex/expensex-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	loading  bool
	identity *models.Identity
}

func (f fakeSession) IsLoading() bool { return f.loading }

func (f fakeSession) CurrentIdentity() (models.Identity, bool) {
	if f.identity == nil {
		return models.Identity{}, false
	}
	return *f.identity, true
}

func newGatedRouter(src SessionSource, admin bool) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{RequireSession(src)}
	if admin {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"email": id.Email})
	})
	r.GET("/gated", handlers...)
	return r
}

func TestRequireSession(t *testing.T) {
	user := &models.Identity{ID: "2", Email: "user@example.com", Role: models.RoleUser}

	tests := []struct {
		name     string
		src      fakeSession
		admin    bool
		wantCode int
		wantBody string
	}{
		{name: "loading", src: fakeSession{loading: true, identity: user}, wantCode: http.StatusServiceUnavailable, wantBody: "Session is loading"},
		{name: "signed out", src: fakeSession{}, wantCode: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "signed in", src: fakeSession{identity: user}, wantCode: http.StatusOK, wantBody: "user@example.com"},
		{name: "non admin on admin route", src: fakeSession{identity: user}, admin: true, wantCode: http.StatusForbidden, wantBody: "Admin access required"},
		{
			name:     "admin on admin route",
			src:      fakeSession{identity: &models.Identity{ID: "1", Email: "admin@example.com", Role: models.RoleAdmin}},
			admin:    true,
			wantCode: http.StatusOK,
			wantBody: "admin@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newGatedRouter(tt.src, tt.admin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	r.ServeHTTP(w, req)
	assert.Equal(t, "client-supplied", w.Header().Get(RequestIDHeader))
}
