package repository

import (
	"context"

	"tiendapos/internal/model"

	"gorm.io/gorm"
)

type ConfiguracionRepository interface {
	Obtener(ctx context.Context) (*model.Configuracion, error)
	Crear(ctx context.Context, c *model.Configuracion) error
	Actualizar(ctx context.Context, c *model.Configuracion) error
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

func (r *configuracionRepo) Obtener(ctx context.Context) (*model.Configuracion, error) {
	var c model.Configuracion
	err := r.db.WithContext(ctx).First(&c, "id = ?", model.ConfiguracionID).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *configuracionRepo) Crear(ctx context.Context, c *model.Configuracion) error {
	c.ID = model.ConfiguracionID
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *configuracionRepo) Actualizar(ctx context.Context, c *model.Configuracion) error {
	c.ID = model.ConfiguracionID
	return r.db.WithContext(ctx).Save(c).Error
}
