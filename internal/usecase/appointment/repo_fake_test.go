package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/vilanovabarber/booking-api/internal/domain/appointment"
	"github.com/vilanovabarber/booking-api/internal/models"
)

// fakeRepo is an in-memory Repository used by the use case tests.
type fakeRepo struct {
	users        map[uint]*models.User
	barbers      map[uint]*models.Barber
	services     map[uint]*models.Service
	appointments map[uint]*models.Appointment

	nextID uint

	// createErr, when set, is returned by CreateAppointment to simulate
	// storage-level failures such as a unique-index violation.
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		barbers:      map[uint]*models.Barber{},
		services:     map[uint]*models.Service{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeRepo) addUser(u models.User) *models.User {
	f.users[u.ID] = &u
	return &u
}

func (f *fakeRepo) addBarber(b models.Barber) *models.Barber {
	f.barbers[b.ID] = &b
	return &b
}

func (f *fakeRepo) addService(s models.Service) *models.Service {
	f.services[s.ID] = &s
	return &s
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) IncrementNoShow(_ context.Context, userID uint) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u.NoShowCount++
	u.IsBlocked = u.NoShowCount >= 2
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) SlotTaken(_ context.Context, barberID uint, date time.Time, slot string) (bool, error) {
	start, end := domain.DayBounds(date)
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || ap.AppointmentTime != slot {
			continue
		}
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if !ap.AppointmentDate.Before(start) && ap.AppointmentDate.Before(end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	ap.ID = f.nextID
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListUpcomingForBarber(_ context.Context, barberID uint, from time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if !ap.AppointmentDate.Before(from) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForBarberOnDate(_ context.Context, barberID uint, date time.Time) ([]models.Appointment, error) {
	start, end := domain.DayBounds(date)
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if !ap.AppointmentDate.Before(start) && ap.AppointmentDate.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// spyMailer records no-show notifications.
type spyMailer struct {
	calls []mailerCall
}

type mailerCall struct {
	Email      string
	ClientName string
	BarberName string
	Count      int
}

func (s *spyMailer) SendNoShow(email, clientName, barberName string, noShowCount int) bool {
	s.calls = append(s.calls, mailerCall{email, clientName, barberName, noShowCount})
	return true
}
