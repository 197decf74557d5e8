//go:build unit

package api_test

import (
	"net/http"

	"scheduling-core/internal/domain/access"
	"scheduling-core/internal/handler/middleware"
	"scheduling-core/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	providerID = builder.DefaultProviderID
	clientID   = builder.DefaultClientID
)

// tokens understood by fakeAuth
const (
	providerToken = "provider-token"
	staffToken    = "staff-token"
	clientToken   = "client-token"
)

func principalFor(token string) (access.Principal, bool) {
	pid := providerID
	switch token {
	case providerToken:
		return access.NewPrincipal(uuid.MustParse("0b8e3d5c-6f7a-4b1c-9d2e-3f4a5b6c7d01"), access.RoleProvider, &pid), true
	case staffToken:
		return access.NewPrincipal(uuid.MustParse("0b8e3d5c-6f7a-4b1c-9d2e-3f4a5b6c7d02"), access.RoleStaff, &pid), true
	case clientToken:
		return access.NewPrincipal(clientID, access.RoleClient, nil), true
	default:
		return access.Principal{}, false
	}
}

// fakeAuth stands in for RequireAuth plus RequirePermission.
func fakeAuth(perms ...access.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if len(h) <= len("Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		p, ok := principalFor(h[len("Bearer "):])
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		target, err := uuid.Parse(c.Param("providerId"))
		if err != nil {
			// left to the handler's own id check
			middleware.SetPrincipal(c, p)
			c.Next()
			return
		}
		if err := p.Authorize(target, perms...); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "Insufficient permissions"}})
			return
		}
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}
