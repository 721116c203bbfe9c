package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemVentaRequest is one cart line. Only producto_id and cantidad are
// accepted: unit price is resolved server-side from the catalog.
type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type RegistrarVentaRequest struct {
	ClienteID string             `json:"cliente_id" validate:"required,uuid"`
	UsuarioID string             `json:"usuario_id" validate:"required,uuid"`
	Items     []ItemVentaRequest `json:"items"      validate:"required,min=1,dive"`
}

// VentaFilter is bound from the query string of GET /v1/ventas.
// Activo: "true" (default) | "false" | "all"
type VentaFilter struct {
	Activo string `form:"activo,default=true"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID        string                 `json:"id"`
	ClienteID string                 `json:"cliente_id"`
	Cliente   string                 `json:"cliente"`
	UsuarioID string                 `json:"usuario_id"`
	Usuario   string                 `json:"usuario"`
	Detalles  []DetalleVentaResponse `json:"detalles"`
	Subtotal  decimal.Decimal        `json:"subtotal"`
	Impuestos decimal.Decimal        `json:"impuestos"`
	Total     decimal.Decimal        `json:"total"`
	Estado    string                 `json:"estado"`
	Activo    bool                   `json:"activo"`
	CreatedAt string                 `json:"created_at"`
}
