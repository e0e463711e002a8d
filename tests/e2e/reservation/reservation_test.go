//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"room-reserve/internal/pkg/clock"
	"room-reserve/tests/common/httptest"
	"room-reserve/tests/e2e"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type ReservationSuite struct {
	suite.Suite
	router *gin.Engine
	clk    *clock.MockClock
}

func (s *ReservationSuite) SetupTest() {
	s.router, s.clk = e2e.NewTestApp(s.T(), time.Date(2030, 3, 15, 12, 0, 30, 0, time.UTC))
}

func TestReservationSuite(t *testing.T) {
	suite.Run(t, new(ReservationSuite))
}

type reservationBody struct {
	ID        int64  `json:"id"`
	RoomID    int    `json:"roomId"`
	Start     string `json:"start"`
	End       string `json:"end"`
	CreatedAt string `json:"createdAt"`
}

func (s *ReservationSuite) TestAdjacentReservationsBothSucceed() {
	first := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations",
		map[string]string{"start": "2030-03-15T13:00:00Z", "end": "2030-03-15T13:30:00Z"})
	httptest.AssertSuccessResponse(s.T(), first, http.StatusCreated, nil)

	second := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations",
		map[string]string{"start": "2030-03-15T13:30:00Z", "end": "2030-03-15T14:00:00Z"})
	httptest.AssertSuccessResponse(s.T(), second, http.StatusCreated, nil)
}

func (s *ReservationSuite) TestOverlapIsRejectedWithConflictDetail() {
	first := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations",
		map[string]string{"start": "2030-03-15T13:20:00Z", "end": "2030-03-15T14:20:00Z"})

	var created reservationBody
	httptest.AssertSuccessResponse(s.T(), first, http.StatusCreated, &created)

	second := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations",
		map[string]string{"start": "2030-03-15T13:30:00Z", "end": "2030-03-15T13:50:00Z"})
	httptest.AssertErrorResponse(s.T(), second, http.StatusConflict, "conflicts")

	var conflictResp struct {
		Detail struct {
			ReservationID int64  `json:"reservationId"`
			Start         string `json:"start"`
			End           string `json:"end"`
		} `json:"detail"`
	}
	httptest.DecodeResponseBody(s.T(), second.Body, &conflictResp)
	s.Equal(created.ID, conflictResp.Detail.ReservationID)
	s.Equal(created.Start, conflictResp.Detail.Start)
	s.Equal(created.End, conflictResp.Detail.End)
}

func (s *ReservationSuite) TestListReturnsTruncatedDisplayTimesInStartOrder() {
	// inserted out of temporal order, with sub-minute noise in the input
	late := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/2/reservations",
		map[string]string{"start": "2030-03-15T16:00:45Z", "end": "2030-03-15T17:00:10Z"})
	httptest.AssertSuccessResponse(s.T(), late, http.StatusCreated, nil)

	early := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/2/reservations",
		map[string]string{"start": "2030-03-15T13:00:30.500Z", "end": "2030-03-15T14:30:59Z"})
	httptest.AssertSuccessResponse(s.T(), early, http.StatusCreated, nil)

	list := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/2/reservations", nil)

	var listed []reservationBody
	httptest.AssertSuccessResponse(s.T(), list, http.StatusOK, &listed)
	s.Require().Len(listed, 2)
	s.Equal("2030-03-15T13:00:00.000Z", listed[0].Start)
	s.Equal("2030-03-15T14:30:00.000Z", listed[0].End)
	s.Equal("2030-03-15T16:00:00.000Z", listed[1].Start)
}

func (s *ReservationSuite) TestValidationFailures() {
	cases := []struct {
		name       string
		body       map[string]string
		expectCode int
	}{
		{
			name:       "sub-minute interval collapses under truncation",
			body:       map[string]string{"start": "2030-03-15T13:00:30Z", "end": "2030-03-15T13:00:45Z"},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "start one hour in the past",
			body:       map[string]string{"start": "2030-03-15T11:00:00Z", "end": "2030-03-15T13:00:00Z"},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "twelve hours plus one minute",
			body:       map[string]string{"start": "2030-03-15T13:00:00Z", "end": "2030-03-16T01:01:00Z"},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "unparseable bound",
			body:       map[string]string{"start": "soon", "end": "2030-03-15T14:00:00Z"},
			expectCode: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations", tc.body)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("start at the current truncated minute is accepted", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations",
			map[string]string{"start": "2030-03-15T12:00:59Z", "end": "2030-03-15T12:30:00Z"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("exactly twelve hours is accepted", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/3/reservations",
			map[string]string{"start": "2030-03-15T13:00:00Z", "end": "2030-03-16T01:00:00Z"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})
}

func (s *ReservationSuite) TestDeleteAndIdSpace() {
	created := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations",
		map[string]string{"start": "2030-03-15T13:00:00Z", "end": "2030-03-15T14:00:00Z"})

	var body reservationBody
	httptest.AssertSuccessResponse(s.T(), created, http.StatusCreated, &body)

	url := fmt.Sprintf("/api/rooms/1/reservations/%d", body.ID)
	del := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
	httptest.AssertSuccessResponse(s.T(), del, http.StatusOK, nil)

	again := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
	httptest.AssertErrorResponse(s.T(), again, http.StatusNotFound, "Reservation not found")

	// the freed slot can be rebooked, but the old id is gone for good
	recreated := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations",
		map[string]string{"start": "2030-03-15T13:00:00Z", "end": "2030-03-15T14:00:00Z"})

	var recreatedBody reservationBody
	httptest.AssertSuccessResponse(s.T(), recreated, http.StatusCreated, &recreatedBody)
	s.Greater(recreatedBody.ID, body.ID)
}

func (s *ReservationSuite) TestResetRestoresInitialState() {
	created := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations",
		map[string]string{"start": "2030-03-15T13:00:00Z", "end": "2030-03-15T14:00:00Z"})
	httptest.AssertSuccessResponse(s.T(), created, http.StatusCreated, nil)

	reset := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/reset", nil)
	httptest.AssertSuccessResponse(s.T(), reset, http.StatusOK, nil)

	rooms := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil)

	var roomList []struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Reservations int    `json:"reservations"`
	}
	httptest.AssertSuccessResponse(s.T(), rooms, http.StatusOK, &roomList)
	s.Require().Len(roomList, 10)
	for _, r := range roomList {
		s.Equal(0, r.Reservations)
	}

	recreated := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations",
		map[string]string{"start": "2030-03-15T13:00:00Z", "end": "2030-03-15T14:00:00Z"})

	var body reservationBody
	httptest.AssertSuccessResponse(s.T(), recreated, http.StatusCreated, &body)
	s.Equal(int64(1), body.ID, "id allocation restarts at 1 after reset")
}

func (s *ReservationSuite) TestClockAdvanceMakesSlotsPast() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/1/reservations",
		map[string]string{"start": "2030-03-15T13:00:00Z", "end": "2030-03-15T14:00:00Z"})
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	s.clk.Add(48 * time.Hour)

	late := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/2/reservations",
		map[string]string{"start": "2030-03-15T15:00:00Z", "end": "2030-03-15T16:00:00Z"})
	httptest.AssertErrorResponse(s.T(), late, http.StatusBadRequest, "past")
}
