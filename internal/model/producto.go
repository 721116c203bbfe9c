package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a sellable catalog item. Precio is the authoritative sale
// price: client-submitted prices are never persisted. Stock is mutated only
// by the sale transaction and the manual adjust endpoint, and never goes
// negative.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	SKU         *string   `gorm:"column:sku;uniqueIndex"`
	Descripcion *string
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0"`
	CategoriaID *uuid.UUID      `gorm:"type:uuid;index"`
	ProveedorID *uuid.UUID      `gorm:"type:uuid;index"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}
