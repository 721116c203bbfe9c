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

type CategoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) *CategoriaService {
	return &CategoriaService{repo: repo}
}

func (s *CategoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if existente, err := s.repo.FindByNombre(ctx, req.Nombre); err == nil && existente != nil {
		return nil, &SolicitudInvalidaError{Motivo: "ya existe una categoria con ese nombre"}
	}

	c := model.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	resp := toCategoriaResponse(&c)
	return &resp, nil
}

func (s *CategoriaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "categoria", ID: id.String()}
		}
		return nil, err
	}
	resp := toCategoriaResponse(c)
	return &resp, nil
}

func (s *CategoriaService) Listar(ctx context.Context, activo string) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.List(ctx, activo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		out = append(out, toCategoriaResponse(&categorias[i]))
	}
	return out, nil
}

func (s *CategoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "categoria", ID: id.String()}
		}
		return nil, err
	}

	if req.Nombre != nil && *req.Nombre != c.Nombre {
		if existente, nerr := s.repo.FindByNombre(ctx, *req.Nombre); nerr == nil && existente != nil {
			return nil, &SolicitudInvalidaError{Motivo: "ya existe una categoria con ese nombre"}
		}
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toCategoriaResponse(c)
	return &resp, nil
}

func (s *CategoriaService) Desactivar(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "categoria", ID: id.String()}
		}
		return err
	}
	if !c.Activo {
		return &NotFoundError{Entidad: "categoria", ID: id.String()}
	}
	return s.repo.Desactivar(ctx, id)
}

func toCategoriaResponse(c *model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Activo:      c.Activo,
	}
}
