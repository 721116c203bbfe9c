package service

import (
	"context"
	"errors"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PrecioCachePrefix keys the public price-check cache entries by SKU.
const PrecioCachePrefix = "precio:"

type ProductoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	proveedorRepo repository.ProveedorRepository
	rdb           *redis.Client
}

func NewProductoService(
	repo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	proveedorRepo repository.ProveedorRepository,
	rdb *redis.Client,
) *ProductoService {
	return &ProductoService{
		repo:          repo,
		categoriaRepo: categoriaRepo,
		proveedorRepo: proveedorRepo,
		rdb:           rdb,
	}
}

func (s *ProductoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.Precio.IsNegative() {
		return nil, &SolicitudInvalidaError{Motivo: "precio no puede ser negativo"}
	}
	if req.Stock < 0 {
		return nil, &SolicitudInvalidaError{Motivo: "stock no puede ser negativo"}
	}

	p := model.Producto{
		Nombre:      req.Nombre,
		SKU:         req.SKU,
		Descripcion: req.Descripcion,
		Precio:      req.Precio.Round(2),
		Stock:       req.Stock,
		Activo:      true,
	}

	if req.CategoriaID != nil {
		categoriaID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, &SolicitudInvalidaError{Motivo: "categoria_id invalido"}
		}
		if _, err := s.categoriaRepo.FindByID(ctx, categoriaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entidad: "categoria", ID: *req.CategoriaID}
			}
			return nil, err
		}
		p.CategoriaID = &categoriaID
	}
	if req.ProveedorID != nil {
		proveedorID, err := uuid.Parse(*req.ProveedorID)
		if err != nil {
			return nil, &SolicitudInvalidaError{Motivo: "proveedor_id invalido"}
		}
		if _, err := s.proveedorRepo.FindByID(ctx, proveedorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entidad: "proveedor", ID: *req.ProveedorID}
			}
			return nil, err
		}
		p.ProveedorID = &proveedorID
	}

	if req.SKU != nil {
		if existente, err := s.repo.FindBySKU(ctx, *req.SKU); err == nil && existente != nil {
			return nil, &SolicitudInvalidaError{Motivo: "ya existe un producto con ese sku"}
		}
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	resp := toProductoResponse(&p)
	return &resp, nil
}

func (s *ProductoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "producto", ID: id.String()}
		}
		return nil, err
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

func (s *ProductoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, toProductoResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{
		Data:  out,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *ProductoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "producto", ID: id.String()}
		}
		return nil, err
	}

	skuAnterior := p.SKU
	precioCambio := false
	skuCambio := false

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.SKU != nil {
		if skuAnterior == nil || *req.SKU != *skuAnterior {
			if existente, serr := s.repo.FindBySKU(ctx, *req.SKU); serr == nil && existente != nil && existente.ID != id {
				return nil, &SolicitudInvalidaError{Motivo: "ya existe un producto con ese sku"}
			}
			skuCambio = true
		}
		p.SKU = req.SKU
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, &SolicitudInvalidaError{Motivo: "precio no puede ser negativo"}
		}
		p.Precio = req.Precio.Round(2)
		precioCambio = true
	}
	if req.CategoriaID != nil {
		categoriaID, perr := uuid.Parse(*req.CategoriaID)
		if perr != nil {
			return nil, &SolicitudInvalidaError{Motivo: "categoria_id invalido"}
		}
		if _, cerr := s.categoriaRepo.FindByID(ctx, categoriaID); cerr != nil {
			if errors.Is(cerr, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entidad: "categoria", ID: *req.CategoriaID}
			}
			return nil, cerr
		}
		p.CategoriaID = &categoriaID
	}
	if req.ProveedorID != nil {
		proveedorID, perr := uuid.Parse(*req.ProveedorID)
		if perr != nil {
			return nil, &SolicitudInvalidaError{Motivo: "proveedor_id invalido"}
		}
		if _, verr := s.proveedorRepo.FindByID(ctx, proveedorID); verr != nil {
			if errors.Is(verr, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entidad: "proveedor", ID: *req.ProveedorID}
			}
			return nil, verr
		}
		p.ProveedorID = &proveedorID
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if precioCambio || skuCambio {
		s.invalidarCachePrecio(ctx, skuAnterior)
		if skuCambio {
			s.invalidarCachePrecio(ctx, p.SKU)
		}
	}

	resp := toProductoResponse(p)
	return &resp, nil
}

// AjustarStock applies a manual inventory correction outside the sale flow.
func (s *ProductoService) AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "producto", ID: id.String()}
		}
		return nil, err
	}
	if req.Delta == 0 {
		return nil, &SolicitudInvalidaError{Motivo: "delta no puede ser cero"}
	}

	if err := s.repo.AjustarStock(ctx, id, req.Delta); err != nil {
		if errors.Is(err, repository.ErrStockInsuficiente) {
			return nil, &StockInsuficienteError{
				ProductoID: id,
				Nombre:     p.Nombre,
				Disponible: p.Stock,
				Solicitado: -req.Delta,
			}
		}
		return nil, err
	}

	log.Info().
		Str("producto_id", id.String()).
		Int("delta", req.Delta).
		Str("motivo", req.Motivo).
		Msg("stock ajustado manualmente")

	p, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

func (s *ProductoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "producto", ID: id.String()}
		}
		return err
	}
	if !p.Activo {
		return &NotFoundError{Entidad: "producto", ID: id.String()}
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return err
	}
	s.invalidarCachePrecio(ctx, p.SKU)
	return nil
}

func (s *ProductoService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "producto", ID: id.String()}
		}
		return err
	}
	return s.repo.Reactivar(ctx, id)
}

func (s *ProductoService) invalidarCachePrecio(ctx context.Context, sku *string) {
	if s.rdb == nil || sku == nil || *sku == "" {
		return
	}
	if err := s.rdb.Del(ctx, PrecioCachePrefix+*sku).Err(); err != nil {
		log.Warn().Err(err).Str("sku", *sku).Msg("no se pudo invalidar la cache de precios")
	}
}

func toProductoResponse(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		SKU:         p.SKU,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock,
		Activo:      p.Activo,
	}
	if p.CategoriaID != nil {
		id := p.CategoriaID.String()
		resp.CategoriaID = &id
	}
	if p.Categoria != nil {
		resp.Categoria = &p.Categoria.Nombre
	}
	if p.ProveedorID != nil {
		id := p.ProveedorID.String()
		resp.ProveedorID = &id
	}
	if p.Proveedor != nil {
		resp.Proveedor = &p.Proveedor.Nombre
	}
	return resp
}
