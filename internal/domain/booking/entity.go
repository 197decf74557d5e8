package booking

import (
	"strings"
	"time"

	"scheduling-core/internal/domain/timerange"

	"github.com/google/uuid"
)

// Draft is the caller-supplied part of a booking, before it is admitted.
type Draft struct {
	ProviderID  uuid.UUID
	ClientID    *uuid.UUID
	Start       time.Time
	End         time.Time
	Type        Type
	DisplayName string
	Notes       string
}

func (d Draft) Interval() timerange.Interval {
	return timerange.Interval{Start: d.Start, End: d.End}
}

// Validate checks the shape of the draft for the given mode. It does not look at other bookings.
func (d Draft) Validate(mode Mode) error {
	if !mode.IsValid() {
		return ErrInvalidMode
	}
	if !d.Type.IsValid() {
		return ErrInvalidType
	}
	if !d.Start.Before(d.End) {
		return ErrInvalidInterval
	}
	if d.Type == TypeBlocked {
		if d.ClientID != nil {
			return ErrBlockedWithClient
		}
		if mode != ModeManualOverride {
			return ErrBlockedRequiresManual
		}
	}
	if mode == ModeSelfService && d.ClientID == nil {
		return ErrClientRequired
	}
	return nil
}

type Booking struct {
	id          uuid.UUID
	providerID  uuid.UUID
	clientID    *uuid.UUID
	interval    timerange.Interval
	status      Status
	kind        Type
	displayName string
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
	cancelledAt *time.Time
}

// New builds a confirmed booking from a valid draft. Collisions are checked by Admit.
func New(d Draft, mode Mode, now time.Time) (*Booking, error) {
	if err := d.Validate(mode); err != nil {
		return nil, err
	}
	var clientID *uuid.UUID
	if d.ClientID != nil {
		id := *d.ClientID
		clientID = &id
	}
	return &Booking{
		id:          uuid.New(),
		providerID:  d.ProviderID,
		clientID:    clientID,
		interval:    d.Interval(),
		status:      StatusConfirmed,
		kind:        d.Type,
		displayName: strings.TrimSpace(d.DisplayName),
		notes:       strings.TrimSpace(d.Notes),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, providerID uuid.UUID,
	clientID *uuid.UUID,
	interval timerange.Interval,
	status Status,
	kind Type,
	displayName, notes string,
	createdAt, updatedAt time.Time,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		id:          id,
		providerID:  providerID,
		clientID:    clientID,
		interval:    interval,
		status:      status,
		kind:        kind,
		displayName: displayName,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		cancelledAt: cancelledAt,
	}
}

// Cancel is the soft transition confirmed -> cancelled. There is no way back.
func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.updatedAt = now
	at := now
	b.cancelledAt = &at
	return nil
}

// Reschedule applies an edited draft to a confirmed booking, keeping its identity.
func (b *Booking) Reschedule(d Draft, mode Mode, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if err := d.Validate(mode); err != nil {
		return err
	}
	b.interval = d.Interval()
	b.kind = d.Type
	b.clientID = d.ClientID
	if name := strings.TrimSpace(d.DisplayName); name != "" {
		b.displayName = name
	}
	b.notes = strings.TrimSpace(d.Notes)
	b.updatedAt = now
	return nil
}

// Clone returns an independent copy, used for snapshots that must survive later mutation.
func (b *Booking) Clone() *Booking {
	c := *b
	if b.clientID != nil {
		id := *b.clientID
		c.clientID = &id
	}
	if b.cancelledAt != nil {
		at := *b.cancelledAt
		c.cancelledAt = &at
	}
	return &c
}

// WithDisplayName returns a copy carrying a resolved display name.
func (b *Booking) WithDisplayName(name string) *Booking {
	c := b.Clone()
	c.displayName = name
	return c
}

// AsCancelled returns a cancelled copy without touching the receiver.
func (b *Booking) AsCancelled(at time.Time) *Booking {
	c := b.Clone()
	_ = c.Cancel(at)
	return c
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) IsBlocked() bool {
	return b.kind == TypeBlocked
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ProviderID() uuid.UUID        { return b.providerID }
func (b *Booking) ClientID() *uuid.UUID         { return b.clientID }
func (b *Booking) Interval() timerange.Interval { return b.interval }
func (b *Booking) Start() time.Time             { return b.interval.Start }
func (b *Booking) End() time.Time               { return b.interval.End }
func (b *Booking) Duration() time.Duration      { return b.interval.Duration() }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Type() Type                   { return b.kind }
func (b *Booking) DisplayName() string          { return b.displayName }
func (b *Booking) Notes() string                { return b.notes }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
