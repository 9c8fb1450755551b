package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/pkg/auth"
)

type stubUserStore struct {
	users map[string]models.Role
}

func (s *stubUserStore) FindAll(ctx context.Context) ([]models.User, error) { return nil, nil }

func (s *stubUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	role, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	return &models.User{Email: email, Role: role}, nil
}

func (s *stubUserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (s *stubUserStore) UpdateRole(ctx context.Context, id string, role models.Role) (*dto.UpdateResponse, error) {
	return nil, nil
}

func (s *stubUserStore) Delete(ctx context.Context, id string) (int64, error) { return 0, nil }

func (s *stubUserStore) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	return 0, nil
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "scholarhub.test",
	})
}

func newAuthTestRouter(m *AuthMiddleware, roles ...models.Role) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)

	invoked := false
	router := gin.New()

	group := router.Group("", m.JWTAuth())
	if len(roles) > 0 {
		group.Use(m.RoleRequired(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		invoked = true
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextEmailKey)})
	})

	return router, &invoked
}

func TestJWTAuthMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), &stubUserStore{})
	router, invoked := newAuthTestRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *invoked, "handler must not run without a token")
	assert.Contains(t, rec.Body.String(), "message")
}

func TestJWTAuthInvalidToken(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), &stubUserStore{})
	router, invoked := newAuthTestRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *invoked)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
	})
	token, err := expired.GenerateToken("student@example.com", "")
	assert.NoError(t, err)

	m := NewAuthMiddleware(newTestJWTService(), &stubUserStore{})
	router, invoked := newAuthTestRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *invoked)
}

func TestJWTAuthValidTokenAttachesClaims(t *testing.T) {
	svc := newTestJWTService()
	token, err := svc.GenerateToken("student@example.com", "Student")
	assert.NoError(t, err)

	m := NewAuthMiddleware(svc, &stubUserStore{})
	router, invoked := newAuthTestRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *invoked)
	assert.Contains(t, rec.Body.String(), "student@example.com")
}

func TestRoleRequired(t *testing.T) {
	svc := newTestJWTService()
	store := &stubUserStore{users: map[string]models.Role{
		"admin@example.com":   models.RoleAdmin,
		"student@example.com": models.RoleUser,
	}}
	m := NewAuthMiddleware(svc, store)

	cases := []struct {
		name       string
		email      string
		wantStatus int
	}{
		{"admin allowed", "admin@example.com", http.StatusOK},
		{"plain user forbidden", "student@example.com", http.StatusForbidden},
		{"unknown user forbidden", "ghost@example.com", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, _ := newAuthTestRouter(m, models.RoleAdmin)

			token, err := svc.GenerateToken(tc.email, "")
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
