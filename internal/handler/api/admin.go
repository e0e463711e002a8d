package api

import (
	"net/http"

	"room-reserve/internal/handler/httperr"
	"room-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewAdminHandler(reservationUseCase usecase.ReservationUseCase) *AdminHandler {
	return &AdminHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Reset state
// @Description Discard all reservations and restore the initial empty room catalog
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.reservationUseCase.Reset(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
