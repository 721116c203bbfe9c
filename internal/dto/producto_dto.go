package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=2"`
	SKU         *string         `json:"sku"          validate:"omitempty,min=1"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"       validate:"min=0"`
	Stock       int             `json:"stock"        validate:"min=0"`
	CategoriaID *string         `json:"categoria_id" validate:"omitempty,uuid"`
	ProveedorID *string         `json:"proveedor_id" validate:"omitempty,uuid"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=2"`
	SKU         *string          `json:"sku"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	ProveedorID *string          `json:"proveedor_id" validate:"omitempty,uuid"`
}

// AjustarStockRequest is a manual correction: positive delta adds units,
// negative removes them. The repository guard keeps stock from going negative.
type AjustarStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Motivo string `json:"motivo" validate:"required,min=3"`
}

// ProductoFilter is bound from the query string of GET /v1/productos.
// Activo: "true" (default) | "false" | "all"
type ProductoFilter struct {
	Nombre      string `form:"nombre"`
	SKU         string `form:"sku"`
	CategoriaID string `form:"categoria_id"`
	ProveedorID string `form:"proveedor_id"`
	Activo      string `form:"activo,default=true"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	SKU         *string         `json:"sku"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	CategoriaID *string         `json:"categoria_id"`
	Categoria   *string         `json:"categoria"`
	ProveedorID *string         `json:"proveedor_id"`
	Proveedor   *string         `json:"proveedor"`
	Activo      bool            `json:"activo"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ConsultaPreciosResponse is the public price-check payload, cached in Redis.
type ConsultaPreciosResponse struct {
	Nombre          string          `json:"nombre"`
	Precio          decimal.Decimal `json:"precio"`
	StockDisponible int             `json:"stock_disponible"`
}
