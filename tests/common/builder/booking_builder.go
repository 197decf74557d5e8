//go:build unit || e2e

package builder

import (
	"time"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/domain/timerange"
	reqdto "scheduling-core/internal/handler/dto/request"

	"github.com/google/uuid"
)

var (
	DefaultProviderID = uuid.MustParse("3f6c1c8e-2a4b-4d7e-9f10-5b8e2d4c6a01")
	DefaultClientID   = uuid.MustParse("7a2d9e4b-1c3f-4e5a-8b6d-0f9e8d7c6b02")
)

// Monday 2 June 2025, the reference day used across scheduling tests.
func At(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.UTC)
}

type BookingBuilder struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	ClientID    *uuid.UUID
	Start       time.Time
	End         time.Time
	Status      booking.Status
	Type        booking.Type
	DisplayName string
	Notes       string
	Mode        booking.Mode
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	clientID := DefaultClientID
	return &BookingBuilder{
		ID:          uuid.New(),
		ProviderID:  DefaultProviderID,
		ClientID:    &clientID,
		Start:       At(9, 0),
		End:         At(9, 30),
		Status:      booking.StatusConfirmed,
		Type:        booking.TypeAppointment,
		DisplayName: "Jane Client",
		Mode:        booking.ModeSelfService,
		Now:         At(8, 0),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDraft() booking.Draft {
	return booking.Draft{
		ProviderID:  b.ProviderID,
		ClientID:    b.ClientID,
		Start:       b.Start,
		End:         b.End,
		Type:        b.Type,
		DisplayName: b.DisplayName,
		Notes:       b.Notes,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.New(b.BuildDraft(), b.Mode, b.Now)
}

// BuildStored returns a booking as it would come back from the store, skipping validation.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	var cancelledAt *time.Time
	if b.Status == booking.StatusCancelled {
		at := b.Now
		cancelledAt = &at
	}
	return booking.Reconstruct(
		b.ID, b.ProviderID, b.ClientID,
		timerange.Interval{Start: b.Start, End: b.End},
		b.Status, b.Type,
		b.DisplayName, b.Notes,
		b.Now, b.Now, cancelledAt,
	)
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		ClientID:    b.ClientID,
		StartTime:   b.Start,
		EndTime:     b.End,
		Type:        b.Type.String(),
		DisplayName: b.DisplayName,
		Notes:       b.Notes,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithProvider(id uuid.UUID) *BookingBuilder {
	b.ProviderID = id
	return b
}

func (b *BookingBuilder) WithClient(id *uuid.UUID) *BookingBuilder {
	b.ClientID = id
	return b
}

func (b *BookingBuilder) WithRange(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithDisplayName(name string) *BookingBuilder {
	b.DisplayName = name
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = notes
	return b
}

func (b *BookingBuilder) WithMode(mode booking.Mode) *BookingBuilder {
	b.Mode = mode
	return b
}

func (b *BookingBuilder) WithType(t booking.Type) *BookingBuilder {
	b.Type = t
	return b
}

func (b *BookingBuilder) AsBlocked() *BookingBuilder {
	b.Type = booking.TypeBlocked
	b.ClientID = nil
	b.DisplayName = "Blocked"
	b.Mode = booking.ModeManualOverride
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}
