package appointment

import "github.com/vilanovabarber/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// IsTerminal reports whether no further transition may leave the status.
func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

func canLeave(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	return canLeave(current)
}

func CanComplete(current Status) error {
	return canLeave(current)
}

func CanMarkNoShow(current Status) error {
	return canLeave(current)
}

func InitialStatus() Status {
	return StatusPending
}
