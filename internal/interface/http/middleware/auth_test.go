package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/permission"
	"github.com/xiebiao/bookstore-api/pkg/jwt"
)

type stubBlacklist struct {
	revoked map[string]bool
	err     error
}

func (s stubBlacklist) IsInBlacklist(_ context.Context, token string) (bool, error) {
	return s.revoked[token], s.err
}

func newEngine(m *AuthMiddleware, auth gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", auth, func(c *gin.Context) {
		actor := Actor(c)
		if actor == nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "is_staff": actor.IsStaff})
	})
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour, 24*time.Hour)
	pair, err := manager.GenerateToken(7, "staff", true)
	require.NoError(t, err)

	m := NewAuthMiddleware(manager, stubBlacklist{revoked: map[string]bool{"revoked": true}})
	r := newEngine(m, m.RequireAuth())

	w := get(r, "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"is_staff":true}`, w.Body.String())

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer not-a-jwt", "Bearer " + pair.RefreshToken} {
		w := get(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.JSONEq(t, `{"detail":"Authentication credentials were not provided."}`, w.Body.String())
	}
}

func TestRequireAuth_Blacklisted(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour, 24*time.Hour)
	pair, err := manager.GenerateToken(1, "reader", false)
	require.NoError(t, err)

	m := NewAuthMiddleware(manager, stubBlacklist{revoked: map[string]bool{pair.AccessToken: true}})

	w := get(newEngine(m, m.RequireAuth()), "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour, 24*time.Hour)
	pair, err := manager.GenerateToken(3, "reader", false)
	require.NoError(t, err)

	m := NewAuthMiddleware(manager, stubBlacklist{})
	r := newEngine(m, m.OptionalAuth())

	assert.JSONEq(t, `{"anonymous":true}`, get(r, "").Body.String())
	assert.JSONEq(t, `{"anonymous":true}`, get(r, "Bearer garbage").Body.String())
	assert.JSONEq(t, `{"user_id":3,"is_staff":false}`, get(r, "bearer "+pair.AccessToken).Body.String())
}

func TestOptionalAuth_BlacklistUnavailable(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour, 24*time.Hour)
	pair, err := manager.GenerateToken(3, "reader", false)
	require.NoError(t, err)

	m := NewAuthMiddleware(manager, stubBlacklist{err: errors.New("redis down")})

	w := get(newEngine(m, m.OptionalAuth()), "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"A server error occurred."}`, w.Body.String())
}

func TestActor_Anonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, Actor(c))
	assert.Equal(t, uint(0), GetUserID(c))

	c.Set(ctxKeyUserID, uint(5))
	assert.Equal(t, &permission.Actor{UserID: 5}, Actor(c))
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
