package components

import (
	"room-reserve/internal/domain/reservation"
	"room-reserve/internal/infra/memstore"
	"room-reserve/internal/pkg/clock"
	"room-reserve/internal/pkg/config"
	"room-reserve/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		reservation.NewFactory,
		func(cfg config.Config) config.ReservationConfig {
			return cfg.Reservation
		},
		fx.Annotate(
			memstore.New,
			fx.As(new(usecase.ReservationStore)),
		),
	),
)
