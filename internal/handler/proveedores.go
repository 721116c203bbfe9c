package handler

import (
	"net/http"

	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedorHandler struct {
	svc *service.ProveedorService
}

func NewProveedorHandler(svc *service.ProveedorService) *ProveedorHandler {
	return &ProveedorHandler{svc: svc}
}

func (h *ProveedorHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedor, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Proveedor creado exitosamente", proveedor)
}

func (h *ProveedorHandler) Listar(c *gin.Context) {
	proveedores, err := h.svc.Listar(c.Request.Context(), c.DefaultQuery("activo", "true"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Proveedores obtenidos", proveedores)
}

func (h *ProveedorHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	proveedor, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Proveedor obtenido", proveedor)
}

func (h *ProveedorHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedor, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Proveedor actualizado exitosamente", proveedor)
}

func (h *ProveedorHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Proveedor eliminado exitosamente", nil)
}
