package handler

import (
	"net/http"

	"tiendapos/internal/apierror"
	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
)

type VentaHandler struct {
	svc *service.VentaService
}

func NewVentaHandler(svc *service.VentaService) *VentaHandler {
	return &VentaHandler{svc: svc}
}

// Registrar godoc
// @Summary Registra una venta
// @Tags ventas
// @Accept json
// @Produce json
// @Param venta body dto.RegistrarVentaRequest true "Venta"
// @Success 201 {object} dto.VentaResponse
// @Router /v1/ventas [post]
func (h *VentaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	venta, err := h.svc.RegistrarVenta(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Venta registrada exitosamente", venta)
}

func (h *VentaHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros de consulta invalidos"))
		return
	}
	ventas, err := h.svc.ListarVentas(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Ventas obtenidas", ventas)
}

func (h *VentaHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	venta, err := h.svc.ObtenerVenta(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Venta obtenida", venta)
}

func (h *VentaHandler) ListarPorCliente(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ventas, err := h.svc.ListarVentasPorCliente(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if len(ventas) == 0 {
		respond(c, http.StatusNotFound, "El cliente no tiene ventas registradas", ventas)
		return
	}
	respond(c, http.StatusOK, "Ventas del cliente obtenidas", ventas)
}

func (h *VentaHandler) ListarPorUsuario(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ventas, err := h.svc.ListarVentasPorUsuario(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if len(ventas) == 0 {
		respond(c, http.StatusNotFound, "El usuario no tiene ventas registradas", ventas)
		return
	}
	respond(c, http.StatusOK, "Ventas del usuario obtenidas", ventas)
}

// Anular marks the sale ANULADA without restoring stock.
func (h *VentaHandler) Anular(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	venta, err := h.svc.AnularVenta(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Venta anulada exitosamente", venta)
}

func (h *VentaHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarVenta(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Venta eliminada exitosamente", nil)
}
