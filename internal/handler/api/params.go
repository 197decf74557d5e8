package api

import (
	"net/http"

	"scheduling-core/internal/domain/access"
	"scheduling-core/internal/handler/httperr"
	"scheduling-core/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func providerIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("providerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func bookingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func principal(c *gin.Context) (access.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return access.Principal{}, false
	}
	return p, true
}

// clientScope is the owner filter for writes: clients only touch their own bookings.
func clientScope(p access.Principal) *uuid.UUID {
	if p.Role != access.RoleClient {
		return nil
	}
	id := p.UserID
	return &id
}
