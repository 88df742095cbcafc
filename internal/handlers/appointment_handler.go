package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vilanovabarber/booking-api/internal/httperr"
	"github.com/vilanovabarber/booking-api/internal/middleware"
	ucAppointment "github.com/vilanovabarber/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	listMine   *ucAppointment.ListMyAppointments
	listBarber *ucAppointment.ListBarberAppointments
	cancel     *ucAppointment.CancelAppointment
	complete   *ucAppointment.CompleteAppointment
	markNoShow *ucAppointment.MarkNoShow
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	listMine *ucAppointment.ListMyAppointments,
	listBarber *ucAppointment.ListBarberAppointments,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	markNoShow *ucAppointment.MarkNoShow,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		listMine:   listMine,
		listBarber: listBarber,
		cancel:     cancel,
		complete:   complete,
		markNoShow: markNoShow,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"appointment_date" binding:"required"`
	Time        string `json:"appointment_time" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes"`
}

type MarkNoShowRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// HELPERS
// ======================================================

// writeBusiness maps domain error codes onto the HTTP taxonomy. Returns
// false when err carries no business code and the caller should treat it
// as internal.
func writeBusiness(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	switch code {
	case "slot_taken":
		httperr.Conflict(c, code, "Este horário já está agendado para este barbeiro. Escolha outro horário.")
	case "not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "forbidden":
		httperr.Forbidden(c, code, "Você não tem permissão para cancelar este agendamento.")
	case "user_blocked":
		httperr.Forbidden(c, code, "Sua conta está bloqueada para novos agendamentos.")
	case "invalid_state":
		httperr.BadRequest(c, code, "O agendamento não permite mais esta ação.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Data inválida.")
	case "invalid_slot":
		httperr.BadRequest(c, code, "Horário inválido.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}

	return true
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_request", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:      ident.User.ID,
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Notes:       req.Notes,
	})
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "internal_error", "Erro ao criar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) Mine(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	aps, err := h.listMine.Execute(c.Request.Context(), ident.User.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, aps)
}

// ForBarber serves the barber's schedule; with a ?date= it narrows to the
// calendar day, otherwise it returns everything upcoming. Public read.
func (h *AppointmentHandler) ForBarber(c *gin.Context) {
	barberID, ok := pathID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if dateStr := c.Query("date"); dateStr != "" {
		aps, err := h.listBarber.OnDate(ctx, barberID, dateStr)
		if err != nil {
			if !writeBusiness(c, err) {
				httperr.Internal(c, "internal_error", "Erro ao listar agendamentos.")
			}
			return
		}
		c.JSON(http.StatusOK, aps)
		return
	}

	aps, err := h.listBarber.Upcoming(ctx, barberID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar agendamentos.")
		return
	}
	c.JSON(http.StatusOK, aps)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), id, ident.User.ID); err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "internal_error", "Erro ao cancelar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Agendamento cancelado com sucesso",
	})
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := h.complete.Execute(c.Request.Context(), id); err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "internal_error", "Erro ao finalizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Corte finalizado com sucesso",
	})
}

// ======================================================
// NO-SHOW
// ======================================================

func (h *AppointmentHandler) MarkNoShow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req MarkNoShowRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	if _, err := h.markNoShow.Execute(c.Request.Context(), id, req.Reason); err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "internal_error", "Erro ao registrar ausência.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cliente marcado como não compareceu",
	})
}
