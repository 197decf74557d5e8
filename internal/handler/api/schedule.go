package api

import (
	"net/http"
	"time"

	reqdto "scheduling-core/internal/handler/dto/request"
	resdto "scheduling-core/internal/handler/dto/response"
	"scheduling-core/internal/handler/httperr"
	"scheduling-core/internal/usecase/commands"
	"scheduling-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary Get schedule
// @Description Get the provider's weekly schedule, or the onboarding default when none is saved
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /providers/{providerId}/schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), providerID)
	if err != nil {
		abortWithUseCaseError(c, err, "get schedule failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

// @Summary Replace schedule
// @Description Replace the whole weekly schedule. All seven weekdays are required.
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Param request body reqdto.ReplaceScheduleRequest true "Weekly schedule"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /providers/{providerId}/schedule [put]
func (h *ScheduleHandler) Replace(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ReplaceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err, "replace schedule failed")
		return
	}
	saved, err := h.cmds.Replace(c.Request.Context(), providerID, in)
	if err != nil {
		abortWithUseCaseError(c, err, "replace schedule failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(queries.ScheduleViewFromDomain(saved, false)))
}

type SlotHandler struct {
	q queries.AvailabilityQueries
}

func NewSlotHandler(q queries.AvailabilityQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary List free slots
// @Description List the bookable slot start times of one calendar date in the provider's time zone
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param providerId path string true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /providers/{providerId}/slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	providerID, ok := providerIDParam(c)
	if !ok {
		return
	}
	date, err := time.Parse(queries.DateLayout, c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date must be YYYY-MM-DD", nil)
		return
	}
	view, err := h.q.Slots(c.Request.Context(), providerID, date)
	if err != nil {
		abortWithUseCaseError(c, err, "list slots failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotsView(view))
}
