package commands

import (
	"context"
	"strings"

	"scheduling-core/internal/domain/booking"
	"scheduling-core/internal/infra"
	"scheduling-core/internal/pkg/clock"
	"scheduling-core/internal/pkg/errs"
	"scheduling-core/internal/usecase/queries"
	"scheduling-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	blockedDisplayName = "Blocked"
	walkInDisplayName  = "Walk-in"
)

type BookingCommands interface {
	Create(ctx context.Context, draft booking.Draft, mode booking.Mode, forceConfirm bool) (*shared.BookingChange, error)
	// Update edits a confirmed booking. When ownedBy is set the booking must belong to that client.
	Update(ctx context.Context, id uuid.UUID, draft booking.Draft, mode booking.Mode, forceConfirm bool, ownedBy *uuid.UUID) (*shared.BookingChange, error)
	Cancel(ctx context.Context, providerID, id uuid.UUID, ownedBy *uuid.UUID) (*booking.Booking, error)
	// Delete removes a booking immediately, skipping the cancelled state.
	Delete(ctx context.Context, providerID, id uuid.UUID) (*booking.Booking, error)
	// HardDelete removes the row unconditionally. A missing row is not an error.
	HardDelete(ctx context.Context, id uuid.UUID) error
	// CheckCollisions reports what a manual write would overlap without writing anything.
	CheckCollisions(ctx context.Context, draft booking.Draft, excludeID uuid.UUID) ([]*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	reads   queries.BookingReadStore
	clients shared.ClientDirectory
	clock   clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, reads queries.BookingReadStore, clients shared.ClientDirectory, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, reads: reads, clients: clients, clock: clk}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, draft booking.Draft, mode booking.Mode, forceConfirm bool) (*shared.BookingChange, error) {
	if err := draft.Validate(mode); err != nil {
		return nil, err
	}
	draft, err := uc.resolveDisplayName(ctx, draft)
	if err != nil {
		return nil, err
	}
	b, err := booking.New(draft, mode, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var accepted []*booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.LockProvider(ctx, b.ProviderID()); derr != nil {
			return derr
		}
		existing, derr := tx.Bookings().ListActiveOverlapping(ctx, tx.DB(), b.ProviderID(), b.Interval())
		if derr != nil {
			return derr
		}
		accepted, derr = booking.Admit(b.Interval(), existing, booking.Admission{Mode: mode, ForceConfirm: forceConfirm})
		if derr != nil {
			return derr
		}
		return tx.Bookings().Create(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, err
	}
	return &shared.BookingChange{Booking: b, Accepted: accepted}, nil
}

func (uc *bookingUseCaseImpl) Update(ctx context.Context, id uuid.UUID, draft booking.Draft, mode booking.Mode, forceConfirm bool, ownedBy *uuid.UUID) (*shared.BookingChange, error) {
	if err := draft.Validate(mode); err != nil {
		return nil, err
	}

	var (
		updated  *booking.Booking
		accepted []*booking.Booking
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.LockProvider(ctx, draft.ProviderID); derr != nil {
			return derr
		}
		current, derr := uc.load(ctx, tx, draft.ProviderID, id, ownedBy)
		if derr != nil {
			return derr
		}
		edit, derr := uc.resolveDisplayName(ctx, keepStored(draft, current))
		if derr != nil {
			return derr
		}
		next := current.Clone()
		if derr = next.Reschedule(edit, mode, uc.clock.Now()); derr != nil {
			return derr
		}
		existing, derr := tx.Bookings().ListActiveOverlapping(ctx, tx.DB(), next.ProviderID(), next.Interval())
		if derr != nil {
			return derr
		}
		accepted, derr = booking.Admit(next.Interval(), existing, booking.Admission{Mode: mode, ForceConfirm: forceConfirm, ExcludeID: id})
		if derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, tx.DB(), next); derr != nil {
			return notFoundAs(derr, errs.ErrBookingNotFound)
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &shared.BookingChange{Booking: updated, Accepted: accepted}, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, providerID, id uuid.UUID, ownedBy *uuid.UUID) (*booking.Booking, error) {
	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := uc.load(ctx, tx, providerID, id, ownedBy)
		if derr != nil {
			return derr
		}
		if derr = current.Cancel(uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, tx.DB(), current); derr != nil {
			return notFoundAs(derr, errs.ErrBookingNotFound)
		}
		cancelled = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (uc *bookingUseCaseImpl) Delete(ctx context.Context, providerID, id uuid.UUID) (*booking.Booking, error) {
	var removed *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := uc.load(ctx, tx, providerID, id, nil)
		if derr != nil {
			return derr
		}
		deleted, derr := tx.Bookings().Delete(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		if !deleted {
			return errs.ErrBookingNotFound
		}
		removed = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (uc *bookingUseCaseImpl) HardDelete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Bookings().Delete(ctx, tx.DB(), id)
		return derr
	})
}

func (uc *bookingUseCaseImpl) CheckCollisions(ctx context.Context, draft booking.Draft, excludeID uuid.UUID) ([]*booking.Booking, error) {
	candidate := draft.Interval()
	if !candidate.IsValid() {
		return nil, booking.ErrInvalidInterval
	}
	existing, err := uc.reads.ListActiveOverlapping(ctx, draft.ProviderID, candidate)
	if err != nil {
		return nil, err
	}
	return booking.FindCollisions(candidate, existing, excludeID), nil
}

// load fetches a booking for a write and hides bookings of other providers.
func (uc *bookingUseCaseImpl) load(ctx context.Context, tx shared.Tx, providerID, id uuid.UUID, ownedBy *uuid.UUID) (*booking.Booking, error) {
	current, err := tx.Bookings().FindByID(ctx, tx.DB(), id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrBookingNotFound)
	}
	if current.ProviderID() != providerID {
		return nil, errs.ErrBookingNotFound
	}
	if ownedBy != nil {
		if current.ClientID() == nil || *current.ClientID() != *ownedBy {
			return nil, errs.ErrNotBookingOwner
		}
	}
	return current, nil
}

// keepStored fills what an edit leaves out from the stored booking: an
// appointment keeps its client, and an unchanged booker keeps its name.
func keepStored(draft booking.Draft, current *booking.Booking) booking.Draft {
	if draft.Type == booking.TypeAppointment && draft.ClientID == nil && current.ClientID() != nil {
		id := *current.ClientID()
		draft.ClientID = &id
	}
	if strings.TrimSpace(draft.DisplayName) == "" && draft.Type == current.Type() && sameClient(draft.ClientID, current.ClientID()) {
		draft.DisplayName = current.DisplayName()
	}
	return draft
}

func sameClient(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (uc *bookingUseCaseImpl) resolveDisplayName(ctx context.Context, draft booking.Draft) (booking.Draft, error) {
	if strings.TrimSpace(draft.DisplayName) != "" {
		return draft, nil
	}
	switch {
	case draft.Type == booking.TypeBlocked:
		draft.DisplayName = blockedDisplayName
	case draft.ClientID != nil:
		name, err := uc.clients.DisplayName(ctx, *draft.ClientID)
		if err != nil {
			return draft, notFoundAs(err, errs.ErrClientNotFound)
		}
		draft.DisplayName = name
	default:
		draft.DisplayName = walkInDisplayName
	}
	return draft, nil
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
