package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConfiguracionID is the fixed identity of the singleton row.
const ConfiguracionID = 1

// Configuracion is the store-wide settings singleton: exactly one row,
// id fixed at 1, enforced by the backend. ImpuestosPorcentaje is the tax
// rate applied to every sale's subtotal.
type Configuracion struct {
	ID                  int     `gorm:"primaryKey"`
	NombreTienda        *string `gorm:"type:varchar(150)"`
	LogoURL             *string `gorm:"column:logo_url;type:varchar(255)"`
	Moneda              string  `gorm:"type:varchar(10);not null;default:'COP'"`
	ImpuestosPorcentaje decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName keeps the singular table name for the singleton.
func (Configuracion) TableName() string { return "configuracion" }
