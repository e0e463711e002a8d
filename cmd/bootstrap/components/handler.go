package components

import (
	"room-reserve/internal/handler"
	"room-reserve/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
