package handler

import (
	"net/http"

	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracionHandler struct {
	svc *service.ConfiguracionService
}

func NewConfiguracionHandler(svc *service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{svc: svc}
}

func (h *ConfiguracionHandler) Obtener(c *gin.Context) {
	cfg, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Configuracion obtenida", cfg)
}

func (h *ConfiguracionHandler) Crear(c *gin.Context) {
	var req dto.CrearConfiguracionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cfg, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Configuracion creada exitosamente", cfg)
}

func (h *ConfiguracionHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarConfiguracionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cfg, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Configuracion actualizada exitosamente", cfg)
}
