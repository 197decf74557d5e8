//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"scheduling-core/internal/domain/access"
	"scheduling-core/internal/domain/schedule"
	"scheduling-core/internal/handler/api"
	resdto "scheduling-core/internal/handler/dto/response"
	"scheduling-core/internal/usecase/commands"
	"scheduling-core/internal/usecase/queries"
	"scheduling-core/tests/common/httptest"
	commandsmock "scheduling-core/tests/mock/commands"
	queriesmock "scheduling-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockScheduleCommands
	mockQueries   *queriesmock.MockScheduleQueries
	mockAvailable *queriesmock.MockAvailabilityQueries
	base          string
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.mockAvailable = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	scheduleHandler := api.NewScheduleHandler(s.mockCommands, s.mockQueries)
	slotHandler := api.NewSlotHandler(s.mockAvailable)

	g := s.router.Group("/api/providers/:providerId")
	g.GET("/schedule", fakeAuth(access.ViewSlots), scheduleHandler.Get)
	g.PUT("/schedule", fakeAuth(access.EditSchedule), scheduleHandler.Replace)
	g.GET("/slots", fakeAuth(access.ViewSlots), slotHandler.List)

	s.base = "/api/providers/" + providerID.String()
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func weekdaysBody() map[string]any {
	days := make([]map[string]any, 0, 7)
	for d := 0; d < 7; d++ {
		day := map[string]any{"weekday": d, "active": d >= 1 && d <= 5}
		if d >= 1 && d <= 5 {
			day["start"] = "09:00"
			day["end"] = "17:00"
		}
		days = append(days, day)
	}
	days[1]["lunch_start"] = "12:00"
	days[1]["lunch_end"] = "13:00"
	return map[string]any{"slot_duration_minutes": 30, "time_zone": "Asia/Tokyo", "days": days}
}

// ================================================================================
// TestGet / TestReplace
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestGet() {
	s.Run("success: default schedule is flagged", func() {
		view := queries.ScheduleViewFromDomain(schedule.Default(providerID, time.UTC), true)
		s.mockQueries.EXPECT().Get(gomock.Any(), providerID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"/schedule", nil, clientToken)

		var body resdto.ScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.IsDefault)
		s.Equal(30, body.SlotDurationMinutes)
		s.Require().Len(body.Days, 7)
		s.False(body.Days[0].Active)
		s.Equal("09:00", body.Days[1].Start)
		s.Equal("17:00", body.Days[1].End)
	})

	s.Run("error: 400 on malformed provider id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/providers/nope/schedule", nil, clientToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ScheduleHandlerTestSuite) TestReplace() {
	url := s.base + "/schedule"

	s.Run("success: parses all seven days", func() {
		s.mockCommands.EXPECT().Replace(gomock.Any(), providerID, gomock.Any()).
			DoAndReturn(func(_ any, pid any, in commands.ReplaceScheduleInput) (*schedule.Schedule, error) {
				s.Equal(30, in.SlotMinutes)
				s.Equal("Asia/Tokyo", in.TimeZone)
				s.False(in.Days[time.Sunday].Active)
				s.Equal(schedule.MustTimeOfDay(9, 0), in.Days[time.Monday].Start)
				s.True(in.Days[time.Monday].HasLunch)
				s.Equal(schedule.MustTimeOfDay(12, 0), in.Days[time.Monday].LunchStart)
				s.False(in.Days[time.Tuesday].HasLunch)
				tokyo, _ := time.LoadLocation("Asia/Tokyo")
				return schedule.New(providerID, in.SlotMinutes, tokyo, in.Days)
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, weekdaysBody(), providerToken)

		var body resdto.ScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.IsDefault)
		s.Equal("Asia/Tokyo", body.TimeZone)
		s.Require().NotNil(body.Days[1].LunchStart)
		s.Equal("12:00", *body.Days[1].LunchStart)
	})

	s.Run("error: 422 when the schedule is rejected", func() {
		s.mockCommands.EXPECT().Replace(gomock.Any(), providerID, gomock.Any()).
			Return(nil, &schedule.InvalidScheduleError{Weekday: time.Monday, Reason: "start 17:00 must be before end 09:00"})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, weekdaysBody(), providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid schedule")

		var body struct {
			Detail struct {
				Weekday int    `json:"weekday"`
				Reason  string `json:"reason"`
			} `json:"detail"`
		}
		httptest.DecodeJSON(s.T(), rec, &body)
		s.Equal(1, body.Detail.Weekday)
		s.Contains(body.Detail.Reason, "must be before")
	})

	s.Run("error: 422 for an unparseable time", func() {
		req := weekdaysBody()
		req["days"].([]map[string]any)[2]["start"] = "9am"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid schedule")
	})

	s.Run("error: 422 for a duplicated weekday", func() {
		req := weekdaysBody()
		req["days"].([]map[string]any)[6]["weekday"] = 5

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, providerToken)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 422 for a lunch without end", func() {
		req := weekdaysBody()
		delete(req["days"].([]map[string]any)[1], "lunch_end")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, providerToken)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 400 when a weekday is missing", func() {
		req := weekdaysBody()
		req["days"] = req["days"].([]map[string]any)[:6]

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, providerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 for staff", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, weekdaysBody(), staffToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

// ================================================================================
// TestSlots
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestSlots() {
	s.Run("success: returns slots for the date", func() {
		date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		view := &queries.SlotsView{
			ProviderID:          providerID,
			Date:                "2025-06-02",
			TimeZone:            "UTC",
			SlotDurationMinutes: 30,
			Slots:               []time.Time{date.Add(9*time.Hour + 30*time.Minute), date.Add(10 * time.Hour)},
		}
		s.mockAvailable.EXPECT().Slots(gomock.Any(), providerID, date).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"/slots?date=2025-06-02", nil, clientToken)

		var body resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2025-06-02", body.Date)
		s.Require().Len(body.Slots, 2)
		s.True(body.Slots[0].Equal(date.Add(9*time.Hour + 30*time.Minute)))
	})

	s.Run("success: a day without slots is an empty list", func() {
		s.mockAvailable.EXPECT().Slots(gomock.Any(), providerID, gomock.Any()).
			Return(&queries.SlotsView{ProviderID: providerID, Date: "2025-06-01", TimeZone: "UTC", SlotDurationMinutes: 30, Slots: []time.Time{}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"/slots?date=2025-06-01", nil, clientToken)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"slots":[]`)
	})

	s.Run("error: 400 without a date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"/slots", nil, clientToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}
