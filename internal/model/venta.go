package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estado values for a Venta. Sales are created COMPLETADA; there is no
// pending checkout path.
const (
	EstadoPendiente  = "PENDIENTE"
	EstadoCompletada = "COMPLETADA"
	EstadoAnulada    = "ANULADA"
)

// Venta is a sale header. Subtotal, Impuestos and Total are computed
// server-side and always satisfy total = subtotal + impuestos. Voiding a
// sale changes Estado only; soft-deactivation (Activo=false) hides it from
// listings without touching stock or status.
type Venta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID uuid.UUID `gorm:"type:uuid;index;not null"`
	UsuarioID uuid.UUID `gorm:"type:uuid;index;not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Impuestos decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Estado    string          `gorm:"type:varchar(20);not null;default:'COMPLETADA'"`
	Activo    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Cliente  *Cliente       `gorm:"foreignKey:ClienteID"`
	Usuario  *Usuario       `gorm:"foreignKey:UsuarioID"`
	Detalles []DetalleVenta `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

// DetalleVenta is one line of a sale. PrecioUnitario and Subtotal are frozen
// snapshots taken at sale time; later price changes on the product never
// alter them. A product referenced here can only be soft-deactivated.
type DetalleVenta struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductoID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Cantidad       int       `gorm:"not null;check:cantidad >= 1"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:RESTRICT"`
}

// TableName keeps the historical singular table name.
func (DetalleVenta) TableName() string { return "venta_detalle" }
