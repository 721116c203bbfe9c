// Package apierror provides the standardized error response for the API.
// Every 4xx/5xx response goes through this package so clients always see the
// same {mensaje, resultado} envelope and internals (stack traces, SQL errors)
// never leak.
package apierror

// APIError is the canonical error envelope. Resultado is null for plain
// errors and carries structured detail (e.g. field errors) when available.
type APIError struct {
	Mensaje   string      `json:"mensaje"`
	Resultado interface{} `json:"resultado"`
}

func New(mensaje string) *APIError {
	return &APIError{Mensaje: mensaje}
}

// NewValidation wraps per-field validation errors.
func NewValidation(fields map[string]string) *APIError {
	return &APIError{Mensaje: "Error de validacion", Resultado: fields}
}
