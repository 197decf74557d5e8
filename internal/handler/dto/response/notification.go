package response

import (
	"time"

	"scheduling-core/internal/domain/notification"
)

type NotificationResponse struct {
	Sequence   uint64           `json:"sequence"`
	Kind       string           `json:"kind"`
	Booking    *BookingResponse `json:"booking"`
	ReceivedAt time.Time        `json:"received_at"`
}

func FromNotificationEvent(e notification.Event) *NotificationResponse {
	return &NotificationResponse{
		Sequence:   e.Sequence,
		Kind:       e.Kind.String(),
		Booking:    FromBooking(e.Booking),
		ReceivedAt: e.ReceivedAt,
	}
}

// NotificationHeadResponse shows the one visible notification. Head is nil
// when the queue is empty.
type NotificationHeadResponse struct {
	Head    *NotificationResponse `json:"head"`
	Pending int                   `json:"pending"`
}

type AcknowledgeResponse struct {
	Acknowledged *NotificationResponse `json:"acknowledged"`
	Next         *NotificationResponse `json:"next"`
	Pending      int                   `json:"pending"`
}
