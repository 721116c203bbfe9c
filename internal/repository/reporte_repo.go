package repository

import (
	"context"
	"time"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"

	"gorm.io/gorm"
)

type ReporteRepository interface {
	GananciasPorFecha(ctx context.Context, desde, hasta *time.Time) ([]dto.GananciaPorFecha, error)
	ProductosMasVendidos(ctx context.Context, limit int) ([]dto.ProductoVendido, error)
	ProductosMenosVendidos(ctx context.Context, limit int) ([]dto.ProductoVendido, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) GananciasPorFecha(ctx context.Context, desde, hasta *time.Time) ([]dto.GananciaPorFecha, error) {
	q := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("DATE(created_at) AS fecha, COUNT(*) AS total_ventas, COALESCE(SUM(subtotal), 0) AS total_subtotal, COALESCE(SUM(impuestos), 0) AS total_impuesto, COALESCE(SUM(total), 0) AS total_general").
		Where("estado = ? AND activo = true", model.EstadoCompletada)
	if desde != nil {
		q = q.Where("created_at >= ?", *desde)
	}
	if hasta != nil {
		// inclusive upper bound on the calendar day
		q = q.Where("created_at < ?", hasta.AddDate(0, 0, 1))
	}
	var out []dto.GananciaPorFecha
	err := q.Group("DATE(created_at)").Order("fecha ASC").Scan(&out).Error
	return out, err
}

func (r *reporteRepo) productosPorVentas(ctx context.Context, limit int, orden string) ([]dto.ProductoVendido, error) {
	var out []dto.ProductoVendido
	err := r.db.WithContext(ctx).
		Table("venta_detalle AS vd").
		Select("p.id AS producto_id, p.nombre, SUM(vd.cantidad) AS total_vendido, COALESCE(SUM(vd.subtotal), 0) AS total_ingresos").
		Joins("JOIN productos p ON p.id = vd.producto_id").
		Joins("JOIN ventas v ON v.id = vd.venta_id").
		Where("v.estado = ? AND v.activo = true", model.EstadoCompletada).
		Group("p.id, p.nombre").
		Order("total_vendido " + orden).
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *reporteRepo) ProductosMasVendidos(ctx context.Context, limit int) ([]dto.ProductoVendido, error) {
	return r.productosPorVentas(ctx, limit, "DESC")
}

func (r *reporteRepo) ProductosMenosVendidos(ctx context.Context, limit int) ([]dto.ProductoVendido, error) {
	return r.productosPorVentas(ctx, limit, "ASC")
}
