package appointment

import (
	"context"
	"time"

	"github.com/vilanovabarber/booking-api/internal/models"
)

type Repository interface {
	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// IncrementNoShow bumps the user's no-show counter, blocks the
	// account when the counter reaches 2 and returns the updated row.
	IncrementNoShow(
		ctx context.Context,
		userID uint,
	) (*models.User, error)

	// -------- Barber / Service --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	SlotTaken(
		ctx context.Context,
		barberID uint,
		date time.Time,
		slot string,
	) (bool, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (reads) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListUpcomingForBarber(
		ctx context.Context,
		barberID uint,
		from time.Time,
	) ([]models.Appointment, error)

	ListForBarberOnDate(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
