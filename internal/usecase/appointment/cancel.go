package appointment

import (
	"context"
	"errors"

	domain "github.com/vilanovabarber/booking-api/internal/domain/appointment"
	"github.com/vilanovabarber/booking-api/internal/httperr"
	"github.com/vilanovabarber/booking-api/internal/models"
	"gorm.io/gorm"
)

type CancelAppointment struct {
	repo domain.Repository
}

func NewCancelAppointment(repo domain.Repository) *CancelAppointment {
	return &CancelAppointment{repo: repo}
}

// Execute cancels an appointment on behalf of its owner. Only the user who
// created the appointment may cancel it.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	callerUserID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	if ap.UserID != callerUserID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.Cancel(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
