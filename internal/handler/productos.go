package handler

import (
	"net/http"

	"tiendapos/internal/apierror"
	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductoHandler struct {
	svc *service.ProductoService
}

func NewProductoHandler(svc *service.ProductoService) *ProductoHandler {
	return &ProductoHandler{svc: svc}
}

func (h *ProductoHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Producto creado exitosamente", producto)
}

func (h *ProductoHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros de consulta invalidos"))
		return
	}
	productos, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Productos obtenidos", productos)
}

func (h *ProductoHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	producto, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Producto obtenido", producto)
}

func (h *ProductoHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Producto actualizado exitosamente", producto)
}

// AjustarStock applies a manual inventory correction.
func (h *ProductoHandler) AjustarStock(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.AjustarStock(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Stock ajustado exitosamente", producto)
}

func (h *ProductoHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Producto eliminado exitosamente", nil)
}

func (h *ProductoHandler) Reactivar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reactivar(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Producto reactivado exitosamente", nil)
}
