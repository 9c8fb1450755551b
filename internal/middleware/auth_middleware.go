package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/app/repositories"
	"github.com/tasnim/scholarhub/internal/pkg/apperrors"
	"github.com/tasnim/scholarhub/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextEmailKey = "email"
	ContextNameKey  = "name"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      repositories.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users repositories.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// JWTAuth middleware for JWT token validation. It requires a
// "Authorization: Bearer <token>" header, verifies signature and expiry,
// and attaches the decoded identity to the request context. Resource-level
// permission checks stay with the handlers.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessage("unauthorized access"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessage("unauthorized access"))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			message := "unauthorized access"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessage(message))
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextNameKey, claims.Name)

		c.Next()
	}
}

// RoleRequired middleware checks that the authenticated user's stored role
// is one of the given roles. The token only carries identity; the role is
// looked up fresh so revocations take effect immediately.
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessage("unauthorized access"))
			return
		}

		user, err := m.users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		if user != nil {
			for _, role := range roles {
				if user.Role == role {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewMessage("forbidden access"))
	}
}
