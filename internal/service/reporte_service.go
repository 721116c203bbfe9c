package service

import (
	"context"
	"time"

	"tiendapos/internal/dto"
	"tiendapos/internal/repository"
)

const topProductosLimit = 10

type ReporteService struct {
	repo repository.ReporteRepository
}

func NewReporteService(repo repository.ReporteRepository) *ReporteService {
	return &ReporteService{repo: repo}
}

func (s *ReporteService) Ganancias(ctx context.Context, filter dto.ReporteFilter) ([]dto.GananciaPorFecha, error) {
	var desde, hasta *time.Time
	if filter.FechaInicio != "" {
		t, err := time.Parse("2006-01-02", filter.FechaInicio)
		if err != nil {
			return nil, &SolicitudInvalidaError{Motivo: "fecha_inicio invalida"}
		}
		desde = &t
	}
	if filter.FechaFin != "" {
		t, err := time.Parse("2006-01-02", filter.FechaFin)
		if err != nil {
			return nil, &SolicitudInvalidaError{Motivo: "fecha_fin invalida"}
		}
		hasta = &t
	}
	if desde != nil && hasta != nil && hasta.Before(*desde) {
		return nil, &SolicitudInvalidaError{Motivo: "fecha_fin anterior a fecha_inicio"}
	}
	return s.repo.GananciasPorFecha(ctx, desde, hasta)
}

func (s *ReporteService) ProductosMasVendidos(ctx context.Context) ([]dto.ProductoVendido, error) {
	return s.repo.ProductosMasVendidos(ctx, topProductosLimit)
}

func (s *ReporteService) ProductosMenosVendidos(ctx context.Context) ([]dto.ProductoVendido, error) {
	return s.repo.ProductosMenosVendidos(ctx, topProductosLimit)
}
