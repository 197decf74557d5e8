package api

import (
	"net/http"
	"strconv"
	"time"

	"scheduling-core/internal/domain/access"
	"scheduling-core/internal/domain/booking"
	reqdto "scheduling-core/internal/handler/dto/request"
	resdto "scheduling-core/internal/handler/dto/response"
	"scheduling-core/internal/handler/httperr"
	"scheduling-core/internal/usecase/commands"
	"scheduling-core/internal/usecase/queries"
	"scheduling-core/internal/usecase/realtime"
	"scheduling-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds  commands.BookingCommands
	q     queries.BookingQueries
	notes realtime.Notifications
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, notes realtime.Notifications) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, notes: notes}
}

// @Summary List bookings
// @Description List the provider's bookings that overlap [from, to)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Param from query string true "Window start (RFC 3339)"
// @Param to query string true "Window end (RFC 3339)"
// @Param include_cancelled query bool false "Include cancelled bookings"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /providers/{providerId}/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from must be RFC 3339", nil)
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "to must be RFC 3339", nil)
		return
	}
	includeCancelled, _ := strconv.ParseBool(c.Query("include_cancelled"))

	views, err := h.q.ListByProvider(c.Request.Context(), providerID, from, to, includeCancelled)
	if err != nil {
		abortWithUseCaseError(c, err, "list bookings failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /providers/{providerId}/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), providerID, id)
	if err != nil {
		abortWithUseCaseError(c, err, "get booking failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Book a slot
// @Description Self-service booking by a client. Any collision rejects the request.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingWriteResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /providers/{providerId}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	h.create(c, booking.ModeSelfService)
}

// @Summary Enter a booking manually
// @Description Manual entry by the provider or staff. Collisions need force_confirm; blocked periods are entered here.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingWriteResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /providers/{providerId}/bookings/manual [post]
func (h *BookingHandler) CreateManual(c *gin.Context) {
	h.create(c, booking.ModeManualOverride)
}

func (h *BookingHandler) create(c *gin.Context, mode booking.Mode) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	draft := req.ToDraft(providerID)
	forceConfirm := req.ForceConfirm
	if mode == booking.ModeSelfService {
		draft.ClientID = clientScope(p)
		forceConfirm = false
	}

	change, err := h.cmds.Create(c.Request.Context(), draft, mode, forceConfirm)
	if err != nil {
		abortWithUseCaseError(c, err, "create booking failed")
		return
	}
	h.notes.Remember(change.Booking)

	c.Header("Location", "/api/providers/"+providerID.String()+"/bookings/"+change.Booking.ID().String())
	c.JSON(http.StatusCreated, writeResponse(change))
}

// @Summary Check collisions
// @Description First phase of a manual write: list what the interval would overlap without writing
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Param request body reqdto.CollisionCheckRequest true "Candidate interval"
// @Success 200 {object} resdto.CollisionsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /providers/{providerId}/bookings/collisions [post]
func (h *BookingHandler) CheckCollisions(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	var req reqdto.CollisionCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	conflicts, err := h.cmds.CheckCollisions(c.Request.Context(), req.ToDraft(providerID), req.GetExcludeID())
	if err != nil {
		abortWithUseCaseError(c, err, "check collisions failed")
		return
	}
	c.JSON(http.StatusOK, resdto.NewCollisionsResponse(conflicts))
}

// @Summary Update booking
// @Description Reschedule or edit a confirmed booking. The mode in the body selects the collision rules. An appointment edit without client_id keeps the stored client, and an empty display_name keeps the stored name.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update request"
// @Success 200 {object} resdto.BookingWriteResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /providers/{providerId}/bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	mode := req.GetMode()
	needed := access.BookSelfService
	if mode == booking.ModeManualOverride {
		needed = access.BookManual
	}
	if !p.Caps.Has(needed) {
		httperr.AbortWithError(c, http.StatusForbidden, access.ErrForbidden, "Insufficient permissions", nil)
		return
	}

	draft := req.ToDraft(providerID)
	forceConfirm := req.ForceConfirm
	owner := clientScope(p)
	if mode == booking.ModeSelfService {
		draft.ClientID = owner
		forceConfirm = false
	}

	change, err := h.cmds.Update(c.Request.Context(), id, draft, mode, forceConfirm, owner)
	if err != nil {
		abortWithUseCaseError(c, err, "update booking failed")
		return
	}
	h.notes.Remember(change.Booking)
	c.JSON(http.StatusOK, writeResponse(change))
}

// @Summary Cancel booking
// @Description Mark a confirmed booking cancelled. The row is removed once the provider acknowledges the notification.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /providers/{providerId}/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	p, ok := principal(c)
	if !ok {
		return
	}
	cancelled, err := h.cmds.Cancel(c.Request.Context(), providerID, id, clientScope(p))
	if err != nil {
		abortWithUseCaseError(c, err, "cancel booking failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(cancelled))
}

// @Summary Delete booking
// @Description Remove a booking immediately, skipping the cancelled state
// @Tags bookings
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /providers/{providerId}/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	// the provider removes it themselves; the echo delete must not be announced
	h.notes.Withhold(providerID, id)
	if _, err := h.cmds.Delete(c.Request.Context(), providerID, id); err != nil {
		h.notes.Release(providerID, id)
		abortWithUseCaseError(c, err, "delete booking failed")
		return
	}
	h.notes.Forget(providerID, id)
	c.Status(http.StatusNoContent)
}

func writeResponse(change *shared.BookingChange) *resdto.BookingWriteResponse {
	res := &resdto.BookingWriteResponse{Booking: resdto.FromBooking(change.Booking)}
	if len(change.Accepted) > 0 {
		res.Overridden = resdto.FromBookings(change.Accepted)
	}
	return res
}
