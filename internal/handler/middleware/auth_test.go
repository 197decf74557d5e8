//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"scheduling-core/internal/domain/access"
	"scheduling-core/internal/handler/middleware"
	"scheduling-core/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator map[string]access.Principal

func (v stubValidator) ValidateToken(token string) (access.Principal, error) {
	p, ok := v[token]
	if !ok {
		return access.Principal{}, errors.New("invalid token")
	}
	return p, nil
}

func newRouter(t *testing.T) (*gin.Engine, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	providerID := uuid.New()
	other := uuid.New()
	v := stubValidator{
		"provider": access.NewPrincipal(uuid.New(), access.RoleProvider, &providerID),
		"foreign":  access.NewPrincipal(uuid.New(), access.RoleProvider, &other),
		"client":   access.NewPrincipal(uuid.New(), access.RoleClient, nil),
	}
	m := middleware.NewAuthMiddleware(v)

	r := gin.New()
	g := r.Group("/providers/:providerId", m.RequireAuth())
	g.PUT("/schedule", m.RequirePermission(access.EditSchedule), func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"role": p.Role.String()})
	})
	g.PUT("/bookings/:id", m.RequirePermission(access.BookManual, access.BookSelfService), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, providerID
}

func TestRequireAuth(t *testing.T) {
	r, providerID := newRouter(t)
	url := "/providers/" + providerID.String() + "/schedule"

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPut, url, nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("unknown token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPut, url, nil, "forged")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodPut, url, nil, "provider")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"role":"provider"}`, rec.Body.String())
	})
}

func TestRequirePermission(t *testing.T) {
	r, providerID := newRouter(t)
	schedule := "/providers/" + providerID.String() + "/schedule"
	bookingURL := "/providers/" + providerID.String() + "/bookings/" + uuid.NewString()

	tests := []struct {
		name   string
		url    string
		token  string
		status int
		msg    string
	}{
		{name: "provider edits own schedule", url: schedule, token: "provider", status: http.StatusOK},
		{name: "client cannot edit schedule", url: schedule, token: "client", status: http.StatusForbidden, msg: "Insufficient permissions"},
		{name: "provider of another practice", url: schedule, token: "foreign", status: http.StatusForbidden, msg: "Not allowed for this provider"},
		{name: "malformed provider id", url: "/providers/abc/schedule", token: "provider", status: http.StatusBadRequest, msg: "Invalid provider id"},
		{name: "either permission is enough for clients", url: bookingURL, token: "client", status: http.StatusNoContent},
		{name: "either permission is enough for providers", url: bookingURL, token: "provider", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodPut, tt.url, nil, tt.token)
			if tt.msg != "" {
				httptest.AssertErrorResponse(t, rec, tt.status, tt.msg)
				return
			}
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
