package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vilanovabarber/booking-api/internal/httperr"
	"github.com/vilanovabarber/booking-api/internal/httpresp"
	"github.com/vilanovabarber/booking-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}
