package access

import (
	"scheduling-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole  = errs.New("invalid role")
	ErrForbidden    = errs.New("operation not permitted for role")
	ErrOutsideScope = errs.New("principal is not scoped to this provider")
)

type Role string

const (
	RoleProvider Role = "provider"
	RoleStaff    Role = "staff"
	RoleClient   Role = "client"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleProvider, RoleStaff, RoleClient:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type Permission uint16

const (
	ViewSlots Permission = 1 << iota
	BookSelfService
	BookManual
	CancelBooking
	DeleteBooking
	EditSchedule
	AckNotifications
	ViewBookings
)

var permissionNames = map[Permission]string{
	ViewSlots:        "view_slots",
	BookSelfService:  "book_self_service",
	BookManual:       "book_manual",
	CancelBooking:    "cancel_booking",
	DeleteBooking:    "delete_booking",
	EditSchedule:     "edit_schedule",
	AckNotifications: "ack_notifications",
	ViewBookings:     "view_bookings",
}

func (p Permission) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return "unknown"
}

// Capabilities is the set of permissions granted to one role.
type Capabilities struct {
	role  Role
	perms Permission
}

var table = map[Role]Permission{
	RoleProvider: ViewSlots | BookManual | CancelBooking | DeleteBooking | EditSchedule | AckNotifications | ViewBookings,
	RoleStaff:    ViewSlots | BookManual | CancelBooking | ViewBookings,
	RoleClient:   ViewSlots | BookSelfService | CancelBooking,
}

// CapabilitiesFor resolves the fixed permission set of a role. Unknown roles get nothing.
func CapabilitiesFor(role Role) Capabilities {
	return Capabilities{role: role, perms: table[role]}
}

func (c Capabilities) Role() Role {
	return c.role
}

func (c Capabilities) Has(p Permission) bool {
	return p != 0 && c.perms&p == p
}

// HasAny reports whether at least one of ps is granted.
func (c Capabilities) HasAny(ps ...Permission) bool {
	for _, p := range ps {
		if c.Has(p) {
			return true
		}
	}
	return false
}

func (c Capabilities) List() []string {
	var out []string
	for p := ViewSlots; p <= ViewBookings; p <<= 1 {
		if c.Has(p) {
			out = append(out, p.String())
		}
	}
	return out
}

// Principal is the caller resolved from a bearer token.
type Principal struct {
	UserID     uuid.UUID
	Role       Role
	ProviderID *uuid.UUID
	Caps       Capabilities
}

func NewPrincipal(userID uuid.UUID, role Role, providerID *uuid.UUID) Principal {
	return Principal{UserID: userID, Role: role, ProviderID: providerID, Caps: CapabilitiesFor(role)}
}

// Authorize checks the permission and, for provider and staff, that the
// principal belongs to the target provider. Clients act across providers.
func (p Principal) Authorize(providerID uuid.UUID, perms ...Permission) error {
	if !p.Caps.HasAny(perms...) {
		return ErrForbidden
	}
	if p.Role == RoleClient {
		return nil
	}
	if p.ProviderID == nil || *p.ProviderID != providerID {
		return ErrOutsideScope
	}
	return nil
}
