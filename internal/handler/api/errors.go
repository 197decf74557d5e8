package api

import (
	"errors"
	"log/slog"
	"net/http"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/schedule"
	resdto "scheduling-core/internal/handler/dto/response"
	"scheduling-core/internal/handler/httperr"
	"scheduling-core/internal/handler/middleware"
	"scheduling-core/internal/pkg/errs"
	"scheduling-core/internal/usecase/queries"
	"scheduling-core/internal/usecase/realtime"

	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	booking.ErrInvalidInterval,
	booking.ErrInvalidType,
	booking.ErrInvalidMode,
	booking.ErrBlockedWithClient,
	booking.ErrBlockedRequiresManual,
	booking.ErrClientRequired,
	queries.ErrInvalidRange,
}

// abortWithUseCaseError maps command and query errors to responses.
// Anything unrecognised is a 500 logged with fallback.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	var (
		confirm  *booking.CollisionConfirmationRequiredError
		taken    *booking.SlotUnavailableError
		invalidS *schedule.InvalidScheduleError
	)

	switch {
	case errors.As(err, &confirm):
		httperr.AbortWithError(c, http.StatusConflict, err, "Collision confirmation required",
			resdto.NewCollisionsResponse(confirm.Conflicts))
	case errors.As(err, &taken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot unavailable",
			resdto.NewCollisionsResponse(taken.Conflicts))
	case errors.As(err, &invalidS):
		detail := gin.H{"reason": invalidS.Reason}
		if invalidS.Weekday >= 0 {
			detail["weekday"] = int(invalidS.Weekday)
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid schedule", detail)
	case errors.Is(err, booking.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already cancelled", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrClientNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
	case errors.Is(err, errs.ErrNotBookingOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Booking belongs to another client", nil)
	case errors.Is(err, realtime.ErrNoSession):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No notification session", nil)
	case isBadRequest(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		slog.Error(fallback,
			"request_id", middleware.GetRequestID(c),
			"path", c.Request.URL.Path,
			"error", err,
			"stack", errs.ExtractStackLines(err, 8))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func isBadRequest(err error) bool {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
