package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

type Type string

const (
	TypeAppointment Type = "appointment"
	TypeBlocked     Type = "blocked"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeAppointment, TypeBlocked:
		return true
	default:
		return false
	}
}

// Mode selects the collision policy applied on create and update.
type Mode string

const (
	// ModeSelfService rejects any collision outright.
	ModeSelfService Mode = "self_service"
	// ModeManualOverride lets staff persist a colliding booking once they confirm it.
	ModeManualOverride Mode = "manual_override"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeSelfService, ModeManualOverride:
		return true
	default:
		return false
	}
}
