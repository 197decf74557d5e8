package components

import (
	"scheduling-core/internal/handler"
	"scheduling-core/internal/handler/api"
	"scheduling-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		func(
			schedule *api.ScheduleHandler,
			slots *api.SlotHandler,
			bookings *api.BookingHandler,
			notification *api.NotificationHandler,
		) handler.Handlers {
			return handler.Handlers{
				Schedule:     schedule,
				Slots:        slots,
				Bookings:     bookings,
				Notification: notification,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
