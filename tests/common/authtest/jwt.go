//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"scheduling-core/internal/domain/access"
	"scheduling-core/internal/pkg/config"
	"scheduling-core/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role access.Role, providerID *uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role.String(), providerID)
	require.NoError(t, err)
	return token
}

// ProviderToken signs a token for the provider themself.
func (h *JWTHelper) ProviderToken(t *testing.T, providerID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, providerID, access.RoleProvider, &providerID)
}

func (h *JWTHelper) StaffToken(t *testing.T, providerID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), access.RoleStaff, &providerID)
}

func (h *JWTHelper) ClientToken(t *testing.T, clientID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, clientID, access.RoleClient, nil)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role access.Role, providerID *uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role.String(), providerID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
