package appointment

import (
	"context"
	"time"

	domain "github.com/vilanovabarber/booking-api/internal/domain/appointment"
	"github.com/vilanovabarber/booking-api/internal/models"
)

// AppointmentWithService is the barber-facing enrichment: the schedule needs
// the service, not the barber's own profile.
type AppointmentWithService struct {
	models.Appointment
	Service *models.Service `json:"service"`
}

type ListBarberAppointments struct {
	repo domain.Repository
}

func NewListBarberAppointments(repo domain.Repository) *ListBarberAppointments {
	return &ListBarberAppointments{repo: repo}
}

func (uc *ListBarberAppointments) enrich(
	ctx context.Context,
	aps []models.Appointment,
) []AppointmentWithService {

	out := make([]AppointmentWithService, 0, len(aps))
	for _, ap := range aps {
		service, _ := uc.repo.GetServiceByID(ctx, ap.ServiceID)
		out = append(out, AppointmentWithService{
			Appointment: ap,
			Service:     service,
		})
	}
	return out
}

// Upcoming returns the barber's non-cancelled appointments from now on.
func (uc *ListBarberAppointments) Upcoming(
	ctx context.Context,
	barberID uint,
) ([]AppointmentWithService, error) {

	aps, err := uc.repo.ListUpcomingForBarber(ctx, barberID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, aps), nil
}

// OnDate returns the barber's non-cancelled appointments within the given
// calendar day.
func (uc *ListBarberAppointments) OnDate(
	ctx context.Context,
	barberID uint,
	dateStr string,
) ([]AppointmentWithService, error) {

	date, err := domain.NormalizeDate(dateStr)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListForBarberOnDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, aps), nil
}
