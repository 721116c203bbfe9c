package service

import (
	"context"
	"errors"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"gorm.io/gorm"
)

type ConfiguracionService struct {
	repo repository.ConfiguracionRepository
}

func NewConfiguracionService(repo repository.ConfiguracionRepository) *ConfiguracionService {
	return &ConfiguracionService{repo: repo}
}

func (s *ConfiguracionService) Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error) {
	cfg, err := s.repo.Obtener(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "configuracion", ID: "1"}
		}
		return nil, err
	}
	return toConfiguracionResponse(cfg), nil
}

// Crear registra la configuracion inicial de la tienda. Solo se permite un registro.
func (s *ConfiguracionService) Crear(ctx context.Context, req dto.CrearConfiguracionRequest) (*dto.ConfiguracionResponse, error) {
	if _, err := s.repo.Obtener(ctx); err == nil {
		return nil, &SolicitudInvalidaError{Motivo: "ya existe una configuracion registrada"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cfg := model.Configuracion{
		NombreTienda: &req.NombreTienda,
		LogoURL:      req.LogoURL,
		Moneda:       "COP",
	}
	if req.Moneda != nil {
		cfg.Moneda = *req.Moneda
	}
	if req.ImpuestosPorcentaje != nil {
		if req.ImpuestosPorcentaje.IsNegative() {
			return nil, &SolicitudInvalidaError{Motivo: "impuestos_porcentaje no puede ser negativo"}
		}
		cfg.ImpuestosPorcentaje = *req.ImpuestosPorcentaje
	}

	if err := s.repo.Crear(ctx, &cfg); err != nil {
		return nil, err
	}
	return toConfiguracionResponse(&cfg), nil
}

func (s *ConfiguracionService) Actualizar(ctx context.Context, req dto.ActualizarConfiguracionRequest) (*dto.ConfiguracionResponse, error) {
	cfg, err := s.repo.Obtener(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "configuracion", ID: "1"}
		}
		return nil, err
	}

	if req.NombreTienda != nil {
		cfg.NombreTienda = req.NombreTienda
	}
	if req.LogoURL != nil {
		cfg.LogoURL = req.LogoURL
	}
	if req.Moneda != nil {
		cfg.Moneda = *req.Moneda
	}
	if req.ImpuestosPorcentaje != nil {
		if req.ImpuestosPorcentaje.IsNegative() {
			return nil, &SolicitudInvalidaError{Motivo: "impuestos_porcentaje no puede ser negativo"}
		}
		cfg.ImpuestosPorcentaje = *req.ImpuestosPorcentaje
	}

	if err := s.repo.Actualizar(ctx, cfg); err != nil {
		return nil, err
	}
	return toConfiguracionResponse(cfg), nil
}

func toConfiguracionResponse(cfg *model.Configuracion) *dto.ConfiguracionResponse {
	return &dto.ConfiguracionResponse{
		NombreTienda:        cfg.NombreTienda,
		LogoURL:             cfg.LogoURL,
		Moneda:              cfg.Moneda,
		ImpuestosPorcentaje: cfg.ImpuestosPorcentaje,
	}
}
