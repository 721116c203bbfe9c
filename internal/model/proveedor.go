package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor is a product supplier. Referenced by products for sourcing;
// existence checks only, never touched by the sale flow.
type Proveedor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	NIT       string    `gorm:"column:nit;uniqueIndex;not null"`
	Telefono  *string
	Correo    *string
	Direccion *string
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Productos []Producto `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }
