package api

import (
	"net/http"

	resdto "scheduling-core/internal/handler/dto/response"
	"scheduling-core/internal/usecase/realtime"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notes realtime.Notifications
}

func NewNotificationHandler(notes realtime.Notifications) *NotificationHandler {
	return &NotificationHandler{notes: notes}
}

// @Summary Current notification
// @Description Show the one visible notification of the provider's queue. Opens the session on first use.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Success 200 {object} resdto.NotificationHeadResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /providers/{providerId}/notifications/head [get]
func (h *NotificationHandler) Head(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	if _, err := h.notes.Open(c.Request.Context(), providerID); err != nil {
		abortWithUseCaseError(c, err, "open notification session failed")
		return
	}
	head, pending, err := h.notes.Head(providerID)
	if err != nil {
		abortWithUseCaseError(c, err, "read notification head failed")
		return
	}
	res := resdto.NotificationHeadResponse{Pending: pending}
	if pending > 0 {
		res.Head = resdto.FromNotificationEvent(head)
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Acknowledge notification
// @Description Dismiss the visible notification. Acknowledging a cancellation removes the booking for good.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Success 200 {object} resdto.AcknowledgeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /providers/{providerId}/notifications/ack [post]
func (h *NotificationHandler) Acknowledge(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	if _, err := h.notes.Open(c.Request.Context(), providerID); err != nil {
		abortWithUseCaseError(c, err, "open notification session failed")
		return
	}
	acked, popped, err := h.notes.Acknowledge(c.Request.Context(), providerID)
	if err != nil {
		abortWithUseCaseError(c, err, "acknowledge notification failed")
		return
	}
	next, pending, err := h.notes.Head(providerID)
	if err != nil {
		abortWithUseCaseError(c, err, "read notification head failed")
		return
	}

	var res resdto.AcknowledgeResponse
	if popped {
		res.Acknowledged = resdto.FromNotificationEvent(acked)
	}
	if pending > 0 {
		res.Next = resdto.FromNotificationEvent(next)
	}
	res.Pending = pending
	c.JSON(http.StatusOK, res)
}
