package components

import (
	"room-reserve/internal/domain/reservation"
	"room-reserve/internal/pkg/config"
	"room-reserve/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		func(cfg config.Config) reservation.Policy {
			return reservation.Policy{MaxDuration: cfg.Reservation.MaxDuration}
		},
		usecase.NewReservationUseCase,
	),
)
