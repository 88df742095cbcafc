package appointment

import (
	"context"
	"errors"

	domain "github.com/vilanovabarber/booking-api/internal/domain/appointment"
	"github.com/vilanovabarber/booking-api/internal/httperr"
	"github.com/vilanovabarber/booking-api/internal/models"
	"gorm.io/gorm"
)

// NoShowMailer is the notification sink. Implementations report success with
// a bool and never propagate delivery failures to the caller.
type NoShowMailer interface {
	SendNoShow(email, clientName, barberName string, noShowCount int) bool
}

type MarkNoShow struct {
	repo   domain.Repository
	mailer NoShowMailer
}

func NewMarkNoShow(repo domain.Repository, mailer NoShowMailer) *MarkNoShow {
	return &MarkNoShow{repo: repo, mailer: mailer}
}

// Execute marks the appointment as a no-show, bumps the owner's counter
// (blocking the account at the second offense) and fires a best-effort
// notification with the post-increment count. Email delivery never affects
// the outcome.
func (uc *MarkNoShow) Execute(
	ctx context.Context,
	appointmentID uint,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	if err := domain.MarkNoShow(ap, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	user, err := uc.repo.IncrementNoShow(ctx, ap.UserID)
	if err != nil {
		return nil, err
	}

	if user.Email != "" {
		barberName := "Barbeiro"
		if barber, err := uc.repo.GetBarberByID(ctx, ap.BarberID); err == nil {
			barberName = barber.Name
		}

		clientName := user.Name
		if clientName == "" {
			clientName = "Cliente"
		}

		uc.mailer.SendNoShow(user.Email, clientName, barberName, user.NoShowCount)
	}

	return ap, nil
}
