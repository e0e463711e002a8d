package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"room-reserve/internal/domain/reservation"
	reqdto "room-reserve/internal/handler/dto/request"
	resdto "room-reserve/internal/handler/dto/response"
	"room-reserve/internal/handler/httperr"
	"room-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create reservation
// @Description Reserve a time slot in a room
// @Tags reservations
// @Accept json
// @Produce json
// @Param roomId path int true "Room ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation bounds (RFC 3339)"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{roomId}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	roomID, ok := h.roomID(c)
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(bindErr, &typeErr) {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Start and end must be RFC 3339 strings", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Start and end are required", nil)
		return
	}

	view, err := h.reservationUseCase.CreateReservation(c.Request.Context(), roomID, *req.Start, *req.End)
	if err != nil {
		h.abortCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description List a room's reservations ordered by ascending start time
// @Tags reservations
// @Produce json
// @Param roomId path int true "Room ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{roomId}/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	roomID, ok := h.roomID(c)
	if !ok {
		return
	}

	views, err := h.reservationUseCase.ListReservations(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, usecase.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out := make([]*resdto.ReservationResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromReservationView(v)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Delete reservation
// @Description Remove a reservation from a room by id
// @Tags reservations
// @Produce json
// @Param roomId path int true "Room ID"
// @Param reservationId path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{roomId}/reservations/{reservationId} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	roomID, ok := h.roomID(c)
	if !ok {
		return
	}

	reservationID, err := strconv.ParseInt(c.Param("reservationId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.reservationUseCase.DeleteReservation(c.Request.Context(), roomID, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, usecase.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// roomID parses the path parameter. A non-integer or unknown id is the
// same failure as an out-of-range one, so both report 404.
func (h *ReservationHandler) roomID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("roomId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, usecase.ErrRoomNotFound, "Room not found", nil)
		return 0, false
	}
	return id, true
}

func (h *ReservationHandler) abortCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrMalformedTime):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Start and end must be valid RFC 3339 timestamps", nil)
	case errors.Is(err, reservation.ErrInvalidInterval):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "End must be after start", nil)
	case errors.Is(err, reservation.ErrPastStart):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation cannot start in the past", nil)
	case errors.Is(err, reservation.ErrTooLong):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation exceeds the maximum duration", nil)
	case errors.Is(err, usecase.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errors.Is(err, usecase.ErrReservationConflict):
		var conflict *reservation.ConflictError
		var detail *resdto.ConflictDetail
		if errors.As(err, &conflict) {
			detail = &resdto.ConflictDetail{
				ReservationID: conflict.ReservationID,
				Start:         conflict.Start,
				End:           conflict.End,
			}
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot conflicts with an existing reservation", detail)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
