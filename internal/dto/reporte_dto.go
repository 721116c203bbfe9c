package dto

import "github.com/shopspring/decimal"

// ReporteFilter bounds the profit-by-date report; both ends optional.
type ReporteFilter struct {
	FechaInicio string `form:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
	FechaFin    string `form:"fecha_fin"    validate:"omitempty,datetime=2006-01-02"`
}

// GananciaPorFecha is one aggregate row of the profit-by-date view.
type GananciaPorFecha struct {
	Fecha         string          `json:"fecha"`
	TotalVentas   int64           `json:"total_ventas"`
	TotalSubtotal decimal.Decimal `json:"total_subtotal"`
	TotalImpuesto decimal.Decimal `json:"total_impuestos"`
	TotalGeneral  decimal.Decimal `json:"total_general"`
}

// ProductoVendido is one row of the top/bottom sellers views.
type ProductoVendido struct {
	ProductoID    string          `json:"producto_id"`
	Nombre        string          `json:"nombre"`
	TotalVendido  int64           `json:"total_vendido"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
}
