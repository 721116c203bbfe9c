package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrVentaYaAnulada is returned when voiding a sale that is already ANULADA.
var ErrVentaYaAnulada = errors.New("la venta ya fue anulada")

// NotFoundError covers any entity lookup that misses, including rows that
// exist but are soft-deactivated.
type NotFoundError struct {
	Entidad string
	ID      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s no encontrado: %s", e.Entidad, e.ID)
}

// StockInsuficienteError carries enough detail for the client to show which
// line of the cart failed and by how much.
type StockInsuficienteError struct {
	ProductoID uuid.UUID
	Nombre     string
	Disponible int
	Solicitado int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d",
		e.Nombre, e.Disponible, e.Solicitado)
}

// SolicitudInvalidaError marks business-level validation failures that the
// request binding layer cannot catch.
type SolicitudInvalidaError struct {
	Motivo string
}

func (e *SolicitudInvalidaError) Error() string { return e.Motivo }
