//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"scheduling-core/internal/handler/dto/request"
	"scheduling-core/internal/handler/dto/response"
	"scheduling-core/tests/common/authtest"
	"scheduling-core/tests/common/dbtest"
	"scheduling-core/tests/common/httptest"
	"scheduling-core/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	scheduleURL      = "/api/providers/%s/schedule"
	slotsURL         = "/api/providers/%s/slots?date=%s"
	bookingsURL      = "/api/providers/%s/bookings"
	manualURL        = "/api/providers/%s/bookings/manual"
	cancelURL        = "/api/providers/%s/bookings/%s/cancel"
	notificationHead = "/api/providers/%s/notifications/head"
	notificationAck  = "/api/providers/%s/notifications/ack"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
	s.waitForListener()
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// the change feed LISTENs from a background goroutine; wait for it before writing
func (s *BookingSuite) waitForListener() {
	require.Eventually(s.T(), func() bool {
		var n int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM pg_stat_activity WHERE datname = current_database() AND query ILIKE 'listen%'").Scan(&n)
		return err == nil && n > 0
	}, 10*time.Second, 50*time.Millisecond, "change feed never started listening")
}

func ptrTo[T any](v T) *T { return &v }

func weekSchedule() request.ReplaceScheduleRequest {
	days := make([]request.DayHoursRequest, 7)
	for wd := range days {
		days[wd] = request.DayHoursRequest{
			Weekday:    wd,
			Active:     true,
			Start:      "09:00",
			End:        "17:00",
			LunchStart: ptrTo("12:00"),
			LunchEnd:   ptrTo("13:00"),
		}
	}
	return request.ReplaceScheduleRequest{SlotDurationMinutes: 60, TimeZone: "UTC", Days: days}
}

func (s *BookingSuite) headOf(providerID uuid.UUID, token string) response.NotificationHeadResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(notificationHead, providerID), nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	var res response.NotificationHeadResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return res
}

func (s *BookingSuite) slotsOn(providerID uuid.UUID, date, token string) []time.Time {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(slotsURL, providerID, date), nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	var res response.SlotsResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return res.Slots
}

// =============================================================================
// TestBookingLifecycle - schedule, slots, booking, collision and notification flow
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: client books a slot, provider is notified, cancel is announced and hard-deleted on ack", func() {
		t := s.T()

		providerID := uuid.New()
		clientID := dbtest.CreateTestClient(t, s.DB, "Jane Doe")
		providerToken := s.jwt.ProviderToken(t, providerID)
		staffToken := s.jwt.StaffToken(t, providerID)
		clientToken := s.jwt.ClientToken(t, clientID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(scheduleURL, providerID), weekSchedule(), providerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// opening the session subscribes the provider to notifications
		require.Zero(t, s.headOf(providerID, providerToken).Pending)

		day := time.Now().UTC().AddDate(0, 0, 7)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		date := day.Format("2006-01-02")
		at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

		wantSlots := []time.Time{at(9), at(10), at(11), at(13), at(14), at(15), at(16)}
		if diff := cmp.Diff(wantSlots, s.slotsOn(providerID, date, clientToken)); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}

		// self-service booking
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, providerID),
			request.BookingRequest{StartTime: at(10), EndTime: at(11)}, clientToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingWriteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "Jane Doe", created.Booking.DisplayName)
		require.Equal(t, &clientID, created.Booking.ClientID)

		require.Eventually(t, func() bool {
			return s.headOf(providerID, providerToken).Pending == 1
		}, 5*time.Second, 50*time.Millisecond, "created notification never arrived")
		head := s.headOf(providerID, providerToken).Head
		require.NotNil(t, head)
		require.Equal(t, "created", head.Kind)
		require.Equal(t, created.Booking.ID, head.Booking.ID)
		require.Equal(t, "Jane Doe", head.Booking.DisplayName)

		require.Len(t, s.slotsOn(providerID, date, clientToken), 6)

		// the same slot is no longer available for self-service
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, providerID),
			request.BookingRequest{StartTime: at(10), EndTime: at(11)}, clientToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Slot unavailable")

		// manual entry over the booking needs confirmation
		manual := request.BookingRequest{StartTime: at(10), EndTime: at(11), DisplayName: "Walk-in"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(manualURL, providerID), manual, staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Collision confirmation required")

		manual.ForceConfirm = true
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(manualURL, providerID), manual, staffToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var forced response.BookingWriteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &forced))
		require.Len(t, forced.Overridden, 1)
		require.Equal(t, created.Booking.ID, forced.Overridden[0].ID)

		// client cancels their own booking
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, providerID, created.Booking.ID), nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cancelled response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cancelled))
		require.Equal(t, "cancelled", cancelled.Status)

		require.Eventually(t, func() bool {
			return s.headOf(providerID, providerToken).Pending == 3
		}, 5*time.Second, 50*time.Millisecond, "notifications for the walk-in and the cancel never arrived")

		// created (client), created (walk-in), cancelled (client)
		kinds := []string{}
		for range 3 {
			w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(notificationAck, providerID), nil, providerToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var ack response.AcknowledgeResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &ack))
			require.NotNil(t, ack.Acknowledged)
			kinds = append(kinds, ack.Acknowledged.Kind)
		}
		require.Equal(t, []string{"created", "created", "cancelled"}, kinds)
		require.Zero(t, s.headOf(providerID, providerToken).Pending)

		// the acknowledged cancellation was hard-deleted; the walk-in remains
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, providerID))
	})

	s.Run("Error case: staff of another provider cannot read the schedule", func() {
		t := s.T()

		providerID := uuid.New()
		staffToken := s.jwt.StaffToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(scheduleURL, providerID), nil, staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not allowed for this provider")
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()

		providerID := uuid.New()
		token := s.jwt.CreateExpiredToken(t, providerID, "provider", &providerID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(scheduleURL, providerID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
