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

type ClienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) *ClienteService {
	return &ClienteService{repo: repo}
}

func (s *ClienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if existente, err := s.repo.FindByDocumento(ctx, req.Documento); err == nil && existente != nil {
		return nil, &SolicitudInvalidaError{Motivo: "ya existe un cliente con ese documento"}
	}

	c := model.Cliente{
		Nombre:        req.Nombre,
		TipoDocumento: req.TipoDocumento,
		Documento:     req.Documento,
		Direccion:     req.Direccion,
		Telefono:      req.Telefono,
		Correo:        req.Correo,
		Activo:        true,
	}
	if c.TipoDocumento == "" {
		c.TipoDocumento = "CC"
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	resp := toClienteResponse(&c)
	return &resp, nil
}

func (s *ClienteService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "cliente", ID: id.String()}
		}
		return nil, err
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

func (s *ClienteService) Listar(ctx context.Context, activo string) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx, activo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, toClienteResponse(&clientes[i]))
	}
	return out, nil
}

func (s *ClienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "cliente", ID: id.String()}
		}
		return nil, err
	}

	if req.Documento != nil && *req.Documento != c.Documento {
		if existente, derr := s.repo.FindByDocumento(ctx, *req.Documento); derr == nil && existente != nil {
			return nil, &SolicitudInvalidaError{Motivo: "ya existe un cliente con ese documento"}
		}
		c.Documento = *req.Documento
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.TipoDocumento != nil {
		c.TipoDocumento = *req.TipoDocumento
	}
	if req.Direccion != nil {
		c.Direccion = req.Direccion
	}
	if req.Telefono != nil {
		c.Telefono = req.Telefono
	}
	if req.Correo != nil {
		c.Correo = req.Correo
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

func (s *ClienteService) Desactivar(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "cliente", ID: id.String()}
		}
		return err
	}
	if !c.Activo {
		return &NotFoundError{Entidad: "cliente", ID: id.String()}
	}
	return s.repo.Desactivar(ctx, id)
}

func toClienteResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:            c.ID.String(),
		Nombre:        c.Nombre,
		TipoDocumento: c.TipoDocumento,
		Documento:     c.Documento,
		Direccion:     c.Direccion,
		Telefono:      c.Telefono,
		Correo:        c.Correo,
		Activo:        c.Activo,
	}
}
