package appointment

import (
	"context"

	domain "github.com/vilanovabarber/booking-api/internal/domain/appointment"
	"github.com/vilanovabarber/booking-api/internal/models"
)

// AppointmentWithDetails is an appointment enriched with its joined barber
// and service. Either may be nil when the referenced row no longer exists;
// the front end degrades instead of the API failing.
type AppointmentWithDetails struct {
	models.Appointment
	Barber  *models.Barber  `json:"barber"`
	Service *models.Service `json:"service"`
}

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]AppointmentWithDetails, error) {

	aps, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]AppointmentWithDetails, 0, len(aps))
	for _, ap := range aps {
		barber, _ := uc.repo.GetBarberByID(ctx, ap.BarberID)
		service, _ := uc.repo.GetServiceByID(ctx, ap.ServiceID)

		out = append(out, AppointmentWithDetails{
			Appointment: ap,
			Barber:      barber,
			Service:     service,
		})
	}

	return out, nil
}
