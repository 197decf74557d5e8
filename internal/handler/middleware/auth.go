package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"scheduling-core/internal/domain/access"
	"scheduling-core/internal/handler/httperr"
	"scheduling-core/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPrincipalKey = "principal"
	providerParam   = "providerId"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// RequirePermission must run after RequireAuth on routes under /providers/:providerId.
// Any one of perms is enough.
func (m *AuthMiddleware) RequirePermission(perms ...access.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}

		providerID, err := uuid.Parse(c.Param(providerParam))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
			return
		}

		if err := principal.Authorize(providerID, perms...); err != nil {
			msg := "Insufficient permissions"
			if errors.Is(err, access.ErrOutsideScope) {
				msg = "Not allowed for this provider"
			}
			httperr.AbortWithError(c, http.StatusForbidden, err, msg, nil)
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// SetPrincipal stores the caller; it also feeds the request log.
func SetPrincipal(c *gin.Context, p access.Principal) {
	c.Set(ctxPrincipalKey, p)
	claims := map[string]any{
		"user_id": p.UserID.String(),
		"role":    p.Role.String(),
	}
	if p.ProviderID != nil {
		claims["provider_id"] = p.ProviderID.String()
	}
	c.Set("jwt_claims", claims)
}

func GetPrincipal(c *gin.Context) (access.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return access.Principal{}, false
	}
	p, ok := v.(access.Principal)
	return p, ok
}
