//go:build e2e

package e2e

import (
	"testing"
	"time"

	"room-reserve/internal/domain/reservation"
	"room-reserve/internal/handler"
	"room-reserve/internal/handler/api"
	"room-reserve/internal/infra/memstore"
	"room-reserve/internal/pkg/clock"
	"room-reserve/internal/pkg/config"
	"room-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NewTestApp wires the real router, usecase and in-memory store with a
// controllable clock. The store lives entirely in process memory, so a
// fresh app per test is cheap and fully isolated.
func NewTestApp(t *testing.T, now time.Time) (*gin.Engine, *clock.MockClock) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	clk := clock.NewMockClock(now)
	store := memstore.New(cfg.Reservation, reservation.NewFactory(clk))
	uc := usecase.NewReservationUseCase(store, clk, reservation.Policy{MaxDuration: cfg.Reservation.MaxDuration})

	engine := gin.New()
	handler.NewRouter(
		engine,
		cfg,
		api.NewReservationHandler(uc),
		api.NewRoomHandler(uc),
		api.NewAdminHandler(uc),
	)
	return engine, clk
}
