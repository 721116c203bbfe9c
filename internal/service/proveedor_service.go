package service

import (
	"context"
	"errors"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) *ProveedorService {
	return &ProveedorService{repo: repo}
}

func (s *ProveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if existente, err := s.repo.FindByNIT(ctx, req.NIT); err == nil && existente != nil {
		return nil, &SolicitudInvalidaError{Motivo: "ya existe un proveedor con ese nit"}
	}

	p := model.Proveedor{
		Nombre:    req.Nombre,
		NIT:       req.NIT,
		Telefono:  req.Telefono,
		Correo:    req.Correo,
		Direccion: req.Direccion,
		Activo:    true,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	resp := toProveedorResponse(&p)
	return &resp, nil
}

func (s *ProveedorService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "proveedor", ID: id.String()}
		}
		return nil, err
	}
	resp := toProveedorResponse(p)
	return &resp, nil
}

func (s *ProveedorService) Listar(ctx context.Context, activo string) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx, activo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, toProveedorResponse(&proveedores[i]))
	}
	return out, nil
}

func (s *ProveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "proveedor", ID: id.String()}
		}
		return nil, err
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Correo != nil {
		p.Correo = req.Correo
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := toProveedorResponse(p)
	return &resp, nil
}

func (s *ProveedorService) Desactivar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "proveedor", ID: id.String()}
		}
		return err
	}
	if !p.Activo {
		return &NotFoundError{Entidad: "proveedor", ID: id.String()}
	}
	return s.repo.Desactivar(ctx, id)
}

func toProveedorResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:        p.ID.String(),
		Nombre:    p.Nombre,
		NIT:       p.NIT,
		Telefono:  p.Telefono,
		Correo:    p.Correo,
		Direccion: p.Direccion,
		Activo:    p.Activo,
	}
}
