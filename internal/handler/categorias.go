package handler

import (
	"net/http"

	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriaHandler struct {
	svc *service.CategoriaService
}

func NewCategoriaHandler(svc *service.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{svc: svc}
}

func (h *CategoriaHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	categoria, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Categoria creada exitosamente", categoria)
}

func (h *CategoriaHandler) Listar(c *gin.Context) {
	categorias, err := h.svc.Listar(c.Request.Context(), c.DefaultQuery("activo", "true"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Categorias obtenidas", categorias)
}

func (h *CategoriaHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	categoria, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Categoria obtenida", categoria)
}

func (h *CategoriaHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	categoria, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Categoria actualizada exitosamente", categoria)
}

func (h *CategoriaHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Categoria eliminada exitosamente", nil)
}
