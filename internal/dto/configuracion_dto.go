package dto

import "github.com/shopspring/decimal"

type CrearConfiguracionRequest struct {
	NombreTienda        string           `json:"nombre_tienda" validate:"required,max=150"`
	LogoURL             *string          `json:"logo_url"      validate:"omitempty,max=255"`
	Moneda              *string          `json:"moneda"        validate:"omitempty,max=10"`
	ImpuestosPorcentaje *decimal.Decimal `json:"impuestos_porcentaje"`
}

type ActualizarConfiguracionRequest struct {
	NombreTienda        *string          `json:"nombre_tienda" validate:"omitempty,max=150"`
	LogoURL             *string          `json:"logo_url"      validate:"omitempty,max=255"`
	Moneda              *string          `json:"moneda"        validate:"omitempty,max=10"`
	ImpuestosPorcentaje *decimal.Decimal `json:"impuestos_porcentaje"`
}

type ConfiguracionResponse struct {
	NombreTienda        *string         `json:"nombre_tienda"`
	LogoURL             *string         `json:"logo_url"`
	Moneda              string          `json:"moneda"`
	ImpuestosPorcentaje decimal.Decimal `json:"impuestos_porcentaje"`
}
