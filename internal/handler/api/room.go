package api

import (
	"net/http"

	resdto "room-reserve/internal/handler/dto/response"
	"room-reserve/internal/handler/httperr"
	"room-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewRoomHandler(reservationUseCase usecase.ReservationUseCase) *RoomHandler {
	return &RoomHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary List rooms
// @Description List the fixed room catalog with current occupancy counts
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.reservationUseCase.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out := make([]*resdto.RoomResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromRoomView(v)
	}
	c.JSON(http.StatusOK, out)
}
