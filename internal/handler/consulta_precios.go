package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tiendapos/internal/apierror"
	"tiendapos/internal/dto"
	"tiendapos/internal/repository"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const precioCacheTTL = 4 * time.Hour

// ConsultaPreciosHandler serves the public price check. Responses are
// cached in Redis per SKU; price updates invalidate the entry.
type ConsultaPreciosHandler struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewConsultaPreciosHandler(repo repository.ProductoRepository, rdb *redis.Client) *ConsultaPreciosHandler {
	return &ConsultaPreciosHandler{repo: repo, rdb: rdb}
}

func (h *ConsultaPreciosHandler) Consultar(c *gin.Context) {
	sku := c.Param("sku")
	if sku == "" {
		c.JSON(http.StatusBadRequest, apierror.New("SKU requerido"))
		return
	}
	ctx := c.Request.Context()
	cacheKey := service.PrecioCachePrefix + sku

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp dto.ConsultaPreciosResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				respond(c, http.StatusOK, "Precio consultado", resp)
				return
			}
		}
	}

	producto, err := h.repo.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
			return
		}
		handleServiceError(c, err)
		return
	}
	if !producto.Activo {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}

	resp := dto.ConsultaPreciosResponse{
		Nombre:          producto.Nombre,
		Precio:          producto.Precio,
		StockDisponible: producto.Stock,
	}

	if h.rdb != nil {
		if payload, merr := json.Marshal(resp); merr == nil {
			if err := h.rdb.Set(ctx, cacheKey, payload, precioCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("sku", sku).Msg("no se pudo cachear el precio")
			}
		}
	}

	respond(c, http.StatusOK, "Precio consultado", resp)
}
