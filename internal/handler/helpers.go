package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"tiendapos/internal/apierror"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// decimal.Decimal validates as its float value so min/max tags work
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// report json tag names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindAndValidate decodes the JSON body into req and runs struct
// validation, writing the 400 envelope itself on failure.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Cuerpo de la solicitud invalido"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
			return false
		}
		c.JSON(http.StatusBadRequest, apierror.New("Cuerpo de la solicitud invalido"))
		return false
	}
	return true
}

// respond writes the success envelope.
func respond(c *gin.Context, status int, mensaje string, resultado interface{}) {
	c.JSON(status, gin.H{"mensaje": mensaje, "resultado": resultado})
}

// parseID reads a uuid path parameter, writing the 400 envelope on failure.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Identificador invalido"))
		return uuid.Nil, false
	}
	return id, true
}

// handleServiceError maps domain errors to HTTP statuses. Anything not in
// the taxonomy is logged server-side and surfaced as a generic 500.
func handleServiceError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	var stock *service.StockInsuficienteError
	var invalida *service.SolicitudInvalidaError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, apierror.New(notFound.Error()))
	case errors.As(err, &stock):
		c.JSON(http.StatusBadRequest, &apierror.APIError{
			Mensaje: stock.Error(),
			Resultado: gin.H{
				"producto_id": stock.ProductoID.String(),
				"disponible":  stock.Disponible,
				"solicitado":  stock.Solicitado,
			},
		})
	case errors.As(err, &invalida):
		c.JSON(http.StatusBadRequest, apierror.New(invalida.Error()))
	case errors.Is(err, service.ErrVentaYaAnulada):
		c.JSON(http.StatusBadRequest, apierror.New("La venta ya fue anulada"))
	case errors.Is(err, service.ErrCredencialesInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New("Credenciales invalidas"))
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("error interno")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
