package notification

import (
	"time"

	"scheduling-core/internal/domain/booking"
)

type Kind string

const (
	KindCreated   Kind = "created"
	KindCancelled Kind = "cancelled"
)

func (k Kind) String() string {
	return string(k)
}

// Event is one entry shown to the provider. The booking is a resolved snapshot
// taken when the change arrived and is never updated afterwards.
type Event struct {
	Sequence   uint64
	Kind       Kind
	Booking    *booking.Booking
	ReceivedAt time.Time
}

func (e Event) RequiresHardDelete() bool {
	return e.Kind == KindCancelled
}
