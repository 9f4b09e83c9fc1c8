package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/auth"
)

// Context keys set by the auth middleware.
const (
	ContextEducatorID = "educatorID"
	ContextEmail      = "email"
)

// AuthMiddleware validates bearer tokens and exposes the caller's identity on
// the gin context. Token claims are trusted as-is; there is no DB lookup per
// request.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth requires a valid "Authorization: Bearer <token>" header
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		c.Set(ContextEducatorID, claims.EducatorID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// OptionalJWTAuth extracts the caller's identity when a valid token is
// present but lets anonymous (or badly authenticated) requests through.
// Routes behind it decide per resource what anonymous callers may see.
func (m *AuthMiddleware) OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err == nil {
			if claims, err := m.jwtService.ValidateToken(tokenString); err == nil {
				c.Set(ContextEducatorID, claims.EducatorID)
				c.Set(ContextEmail, claims.Email)
			}
		}
		c.Next()
	}
}

// GetEducatorID returns the authenticated educator id from the context
func GetEducatorID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextEducatorID)
	return id, id != ""
}
