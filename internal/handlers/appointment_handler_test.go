package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/vilanovabarber/booking-api/internal/domain/appointment"
	"github.com/vilanovabarber/booking-api/internal/domain/identity"
	"github.com/vilanovabarber/booking-api/internal/middleware"
	"github.com/vilanovabarber/booking-api/internal/models"
	ucAppointment "github.com/vilanovabarber/booking-api/internal/usecase/appointment"
)

// memRepo is the minimal in-memory store these handler tests need.
type memRepo struct {
	users        map[uint]*models.User
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:        map[uint]*models.User{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (m *memRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) IncrementNoShow(_ context.Context, userID uint) (*models.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u.NoShowCount++
	u.IsBlocked = u.NoShowCount >= 2
	cp := *u
	return &cp, nil
}

func (m *memRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepo) SlotTaken(_ context.Context, barberID uint, date time.Time, slot string) (bool, error) {
	start, end := domain.DayBounds(date)
	for _, ap := range m.appointments {
		if ap.BarberID == barberID && ap.AppointmentTime == slot &&
			ap.Status != string(domain.StatusCancelled) &&
			!ap.AppointmentDate.Before(start) && ap.AppointmentDate.Before(end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	m.nextID++
	ap.ID = m.nextID
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

func (m *memRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := m.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (m *memRepo) ListByUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (m *memRepo) ListUpcomingForBarber(_ context.Context, barberID uint, from time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (m *memRepo) ListForBarberOnDate(_ context.Context, barberID uint, date time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (m *memRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

var _ domain.Repository = (*memRepo)(nil)

type noopMailer struct{}

func (noopMailer) SendNoShow(_, _, _ string, _ int) bool { return true }

// asIdentity injects a resolved identity, standing in for the cookie
// resolver so handler tests focus on the HTTP mapping.
func asIdentity(ident identity.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextIdentity, ident)
		c.Next()
	}
}

func newTestRouter(repo domain.Repository, ident identity.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo),
		ucAppointment.NewListMyAppointments(repo),
		ucAppointment.NewListBarberAppointments(repo),
		ucAppointment.NewCancelAppointment(repo),
		ucAppointment.NewCompleteAppointment(repo),
		ucAppointment.NewMarkNoShow(repo, noopMailer{}),
	)

	r := gin.New()
	api := r.Group("/api", asIdentity(ident))

	client := api.Group("/appointments", middleware.RequireUser())
	client.POST("", h.Create)
	client.GET("/mine", h.Mine)
	client.POST("/:id/cancel", h.Cancel)

	dashboard := api.Group("/appointments", middleware.RequireBarber())
	dashboard.POST("/:id/complete", h.Complete)
	dashboard.POST("/:id/no-show", h.MarkNoShow)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Code string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("malformed error body %q: %v", w.Body.String(), err)
	}
	return resp.Code
}

const createBody = `{"barber_id":1,"service_id":1,"appointment_date":"2025-03-10","appointment_time":"14:00","client_name":"Cliente Teste"}`

func userIdent(id uint) identity.Identity {
	return identity.ForUser(identity.User{ID: id, OpenID: "open", Name: "Cliente Teste", Role: "user"})
}

func barberIdent() identity.Identity {
	return identity.ForBarber(identity.Barber{ID: 1, Name: "Carlos Silva"})
}

func TestCreateThenConflict(t *testing.T) {
	repo := newMemRepo()
	repo.users[1] = &models.User{ID: 1, OpenID: "open"}
	r := newTestRouter(repo, userIdent(1))

	w := doJSON(t, r, http.MethodPost, "/api/appointments", createBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/appointments", createBody)
	if w.Code != http.StatusConflict {
		t.Fatalf("double booking: status = %d, want 409", w.Code)
	}
	if code := errorCode(t, w); code != "slot_taken" {
		t.Errorf("error_code = %q, want slot_taken", code)
	}
}

func TestCreateRequiresAuth(t *testing.T) {
	r := newTestRouter(newMemRepo(), identity.Anonymous())

	w := doJSON(t, r, http.MethodPost, "/api/appointments", createBody)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestCancelMapsOwnershipErrors(t *testing.T) {
	repo := newMemRepo()
	repo.users[1] = &models.User{ID: 1, OpenID: "open"}
	repo.appointments[5] = &models.Appointment{ID: 5, UserID: 2, Status: string(domain.StatusPending)}
	repo.nextID = 5
	r := newTestRouter(repo, userIdent(1))

	w := doJSON(t, r, http.MethodPost, "/api/appointments/5/cancel", "")
	if w.Code != http.StatusForbidden {
		t.Errorf("non-owner cancel: status = %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/appointments/99/cancel", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", w.Code)
	}
}

func TestCompleteRequiresBarberSession(t *testing.T) {
	repo := newMemRepo()
	repo.users[1] = &models.User{ID: 1, OpenID: "open"}
	repo.appointments[5] = &models.Appointment{ID: 5, UserID: 1, Status: string(domain.StatusPending)}
	repo.nextID = 5

	// A client session is not enough for dashboard actions.
	r := newTestRouter(repo, userIdent(1))
	w := doJSON(t, r, http.MethodPost, "/api/appointments/5/complete", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("user on dashboard route: status = %d, want 401", w.Code)
	}

	r = newTestRouter(repo, barberIdent())
	w = doJSON(t, r, http.MethodPost, "/api/appointments/5/complete", "")
	if w.Code != http.StatusOK {
		t.Fatalf("barber complete: status = %d body %s", w.Code, w.Body.String())
	}

	ap, _ := repo.GetAppointmentByID(context.Background(), 5)
	if ap.Status != string(domain.StatusCompleted) {
		t.Errorf("status = %q, want completed", ap.Status)
	}
}

func TestMarkNoShowBlocksAfterSecondOffense(t *testing.T) {
	repo := newMemRepo()
	repo.users[1] = &models.User{ID: 1, OpenID: "open", Email: "cliente@example.com"}
	repo.appointments[1] = &models.Appointment{ID: 1, UserID: 1, BarberID: 1, Status: string(domain.StatusPending)}
	repo.appointments[2] = &models.Appointment{ID: 2, UserID: 1, BarberID: 1, Status: string(domain.StatusPending)}
	repo.nextID = 2
	r := newTestRouter(repo, barberIdent())

	for _, path := range []string{"/api/appointments/1/no-show", "/api/appointments/2/no-show"} {
		if w := doJSON(t, r, http.MethodPost, path, `{"reason":"não compareceu"}`); w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d body %s", path, w.Code, w.Body.String())
		}
	}

	u, _ := repo.GetUserByID(context.Background(), 1)
	if u.NoShowCount != 2 || !u.IsBlocked {
		t.Errorf("count = %d, blocked = %v; want 2, true", u.NoShowCount, u.IsBlocked)
	}
}

func TestMineListsOnlyOwnRows(t *testing.T) {
	repo := newMemRepo()
	repo.users[1] = &models.User{ID: 1, OpenID: "open"}
	repo.appointments[1] = &models.Appointment{ID: 1, UserID: 1, Status: string(domain.StatusPending)}
	repo.appointments[2] = &models.Appointment{ID: 2, UserID: 2, Status: string(domain.StatusPending)}
	repo.nextID = 2
	r := newTestRouter(repo, userIdent(1))

	w := doJSON(t, r, http.MethodGet, "/api/appointments/mine", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var list []ucAppointment.AppointmentWithDetails
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(list) != 1 || list[0].UserID != 1 {
		t.Errorf("list = %+v, want only user 1's appointment", list)
	}
}
