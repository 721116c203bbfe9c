package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a store customer. Referenced by sales; must be active at the
// time a sale is registered, never mutated by the sale flow.
type Cliente struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre        string    `gorm:"not null"`
	TipoDocumento string    `gorm:"type:varchar(20);not null;default:'CC'"`
	Documento     string    `gorm:"uniqueIndex;not null"`
	Direccion     *string
	Telefono      *string
	Correo        *string `gorm:"uniqueIndex"`
	Activo        bool    `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Cliente) TableName() string { return "clientes" }
