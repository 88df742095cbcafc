package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vilanovabarber/booking-api/internal/auth"
	"github.com/vilanovabarber/booking-api/internal/domain/identity"
	"github.com/vilanovabarber/booking-api/internal/httperr"
	"github.com/vilanovabarber/booking-api/internal/httpresp"
	"github.com/vilanovabarber/booking-api/internal/middleware"
	"github.com/vilanovabarber/booking-api/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// --------- Requests ---------

type BarberLoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// List returns the active barber roster; public.
func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Where("is_active = ?", true).Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar barbeiros.")
		return
	}

	httpresp.OK(c, barbers)
}

// Login authenticates a barber by name and password and sets the
// barber_session cookie for the dashboard.
func (h *BarberHandler) Login(c *gin.Context) {
	var req BarberLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var barber models.Barber
	if err := h.db.Where("name = ?", req.Name).First(&barber).Error; err != nil {
		httperr.Unauthorized(c, "unauthorized", "Nome ou senha inválidos")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "unauthorized", "Nome ou senha inválidos")
		return
	}

	session := identity.Barber{ID: barber.ID, Name: barber.Name}
	payload, err := json.Marshal(session)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao iniciar sessão.")
		return
	}

	setSessionCookie(c, middleware.BarberCookie, string(payload), int(auth.SessionTTL.Seconds()))

	c.JSON(http.StatusOK, session)
}

// Me returns the barber session, or null when the caller has none.
func (h *BarberHandler) Me(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)
	if !ident.IsBarber() {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, ident.Barber)
}
