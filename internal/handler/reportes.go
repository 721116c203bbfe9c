package handler

import (
	"net/http"

	"tiendapos/internal/apierror"
	"tiendapos/internal/dto"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReporteHandler struct {
	svc *service.ReporteService
}

func NewReporteHandler(svc *service.ReporteService) *ReporteHandler {
	return &ReporteHandler{svc: svc}
}

func (h *ReporteHandler) Ganancias(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros de consulta invalidos"))
		return
	}
	reporte, err := h.svc.Ganancias(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Reporte de ganancias generado", reporte)
}

func (h *ReporteHandler) MasVendidos(c *gin.Context) {
	reporte, err := h.svc.ProductosMasVendidos(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Productos mas vendidos", reporte)
}

func (h *ReporteHandler) MenosVendidos(c *gin.Context) {
	reporte, err := h.svc.ProductosMenosVendidos(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "Productos menos vendidos", reporte)
}
