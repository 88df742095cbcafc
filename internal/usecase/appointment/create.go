package appointment

import (
	"context"

	domain "github.com/vilanovabarber/booking-api/internal/domain/appointment"
	"github.com/vilanovabarber/booking-api/internal/httperr"
	"github.com/vilanovabarber/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID    uint
	BarberID  uint
	ServiceID uint

	Date string // "YYYY-MM-DD"
	Time string // slot, e.g. "14:00"

	ClientName  string
	ClientPhone string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo domain.Repository
}

func NewCreateAppointment(repo domain.Repository) *CreateAppointment {
	return &CreateAppointment{repo: repo}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsBlocked {
		return nil, httperr.ErrBusiness("user_blocked")
	}

	date, err := domain.NormalizeDate(in.Date)
	if err != nil {
		return nil, err
	}

	if !domain.IsValidSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	// Fast path: friendly conflict error before touching the insert.
	taken, err := uc.repo.SlotTaken(ctx, in.BarberID, date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	ap := &models.Appointment{
		UserID:          in.UserID,
		BarberID:        in.BarberID,
		ServiceID:       in.ServiceID,
		AppointmentDate: date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		ClientName:      in.ClientName,
		ClientPhone:     in.ClientPhone,
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		// The pre-check and the insert are not atomic. Two concurrent
		// bookings can both pass the check; the unique slot index decides,
		// and its violation is the same conflict to the caller.
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	return ap, nil
}
