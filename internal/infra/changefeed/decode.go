package changefeed

import (
	"encoding/json"
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/timerange"
	"scheduling-core/internal/pkg/errs"
	"scheduling-core/internal/usecase/realtime"

	"github.com/google/uuid"
)

// payload mirrors the JSON built by the notify_booking_change trigger.
type payload struct {
	Op         string      `json:"op"`
	ProviderID uuid.UUID   `json:"provider_id"`
	Record     *bookingRow `json:"record"`
	OldRecord  *struct {
		ID uuid.UUID `json:"id"`
	} `json:"old_record"`
}

type bookingRow struct {
	ID          uuid.UUID  `json:"id"`
	ProviderID  uuid.UUID  `json:"provider_id"`
	ClientID    *uuid.UUID `json:"client_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Status      string     `json:"status"`
	Type        string     `json:"type"`
	DisplayName string     `json:"display_name"`
	Notes       *string    `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
}

func (r *bookingRow) toDomain() *booking.Booking {
	var notes string
	if r.Notes != nil {
		notes = *r.Notes
	}
	return booking.Reconstruct(
		r.ID,
		r.ProviderID,
		r.ClientID,
		timerange.Interval{Start: r.StartTime, End: r.EndTime},
		booking.Status(r.Status),
		booking.Type(r.Type),
		r.DisplayName,
		notes,
		r.CreatedAt,
		r.UpdatedAt,
		r.CancelledAt,
	)
}

// Decode turns one change feed message into a ChangeEvent.
func Decode(data []byte) (realtime.ChangeEvent, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return realtime.ChangeEvent{}, errs.Wrap(err, "decode change payload")
	}

	ev := realtime.ChangeEvent{Op: realtime.Op(p.Op), ProviderID: p.ProviderID}
	switch ev.Op {
	case realtime.OpInsert, realtime.OpUpdate:
		if p.Record == nil {
			return realtime.ChangeEvent{}, errs.Newf("%s change without record", p.Op)
		}
		ev.Record = p.Record.toDomain()
		if ev.ProviderID == uuid.Nil {
			ev.ProviderID = p.Record.ProviderID
		}
	case realtime.OpDelete:
		if p.OldRecord == nil || p.OldRecord.ID == uuid.Nil {
			return realtime.ChangeEvent{}, errs.New("delete change without old record id")
		}
		ev.OldID = p.OldRecord.ID
	default:
		return realtime.ChangeEvent{}, errs.Newf("unknown change op %q", p.Op)
	}
	if ev.ProviderID == uuid.Nil {
		return realtime.ChangeEvent{}, errs.Newf("%s change without provider id", p.Op)
	}
	return ev, nil
}
