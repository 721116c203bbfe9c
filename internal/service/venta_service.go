package service

import (
	"context"
	"errors"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReciboDispatcher enqueues receipt delivery jobs. Implemented by the
// worker package; nil disables receipts.
type ReciboDispatcher interface {
	EnqueueRecibo(ctx context.Context, ventaID uuid.UUID, correo string) error
}

type VentaService struct {
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	usuarioRepo  repository.UsuarioRepository
	configRepo   repository.ConfiguracionRepository
	dispatcher   ReciboDispatcher
}

func NewVentaService(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	usuarioRepo repository.UsuarioRepository,
	configRepo repository.ConfiguracionRepository,
	dispatcher ReciboDispatcher,
) *VentaService {
	return &VentaService{
		ventaRepo:    ventaRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		usuarioRepo:  usuarioRepo,
		configRepo:   configRepo,
		dispatcher:   dispatcher,
	}
}

// impuestoVigente returns the store tax rate. A missing configuracion row
// means taxes were never set up, which is treated as 0%.
func (s *VentaService) impuestoVigente(ctx context.Context) (decimal.Decimal, error) {
	cfg, err := s.configRepo.Obtener(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return cfg.ImpuestosPorcentaje, nil
}

// RegistrarVenta runs the whole sale in one transaction: every line is
// priced from the catalog, stock is decremented with a conditional guard,
// and any failure rolls everything back so no partial sale survives.
func (s *VentaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, &SolicitudInvalidaError{Motivo: "cliente_id invalido"}
	}
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, &SolicitudInvalidaError{Motivo: "usuario_id invalido"}
	}
	if len(req.Items) == 0 {
		return nil, &SolicitudInvalidaError{Motivo: "la venta debe tener al menos un item"}
	}

	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "cliente", ID: req.ClienteID}
		}
		return nil, err
	}
	if !cliente.Activo {
		return nil, &NotFoundError{Entidad: "cliente", ID: req.ClienteID}
	}

	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "usuario", ID: req.UsuarioID}
		}
		return nil, err
	}
	if !usuario.Activo {
		return nil, &NotFoundError{Entidad: "usuario", ID: req.UsuarioID}
	}

	impuestoPct, err := s.impuestoVigente(ctx)
	if err != nil {
		return nil, err
	}

	var venta model.Venta
	detallesResp := make([]dto.DetalleVentaResponse, 0, len(req.Items))

	err = runTx(ctx, s.ventaRepo.DB(), func(tx *gorm.DB) error {
		subtotal := decimal.Zero
		detalles := make([]model.DetalleVenta, 0, len(req.Items))
		productos := make([]*model.Producto, 0, len(req.Items))

		for _, item := range req.Items {
			productoID, perr := uuid.Parse(item.ProductoID)
			if perr != nil {
				return &SolicitudInvalidaError{Motivo: "producto_id invalido: " + item.ProductoID}
			}
			if item.Cantidad < 1 {
				return &SolicitudInvalidaError{Motivo: "cantidad debe ser al menos 1"}
			}

			producto, perr := s.productoRepo.FindByIDTx(ctx, tx, productoID)
			if perr != nil {
				if errors.Is(perr, gorm.ErrRecordNotFound) {
					return &NotFoundError{Entidad: "producto", ID: item.ProductoID}
				}
				return perr
			}
			if !producto.Activo {
				return &NotFoundError{Entidad: "producto", ID: item.ProductoID}
			}
			if producto.Stock < item.Cantidad {
				return &StockInsuficienteError{
					ProductoID: producto.ID,
					Nombre:     producto.Nombre,
					Disponible: producto.Stock,
					Solicitado: item.Cantidad,
				}
			}

			lineaSubtotal := producto.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))).Round(2)
			subtotal = subtotal.Add(lineaSubtotal)

			detalles = append(detalles, model.DetalleVenta{
				ProductoID:     producto.ID,
				Cantidad:       item.Cantidad,
				PrecioUnitario: producto.Precio,
				Subtotal:       lineaSubtotal,
			})
			productos = append(productos, producto)
		}

		subtotal = subtotal.Round(2)
		impuestos := subtotal.Mul(impuestoPct).Div(decimal.NewFromInt(100)).Round(2)
		total := subtotal.Add(impuestos).Round(2)

		// Decrement stock before persisting the sale. The conditional
		// update catches the race where another sale consumed the units
		// after our read above.
		for i, d := range detalles {
			if derr := s.productoRepo.DescontarStockTx(ctx, tx, d.ProductoID, d.Cantidad); derr != nil {
				if errors.Is(derr, repository.ErrStockInsuficiente) {
					disponible := productos[i].Stock
					if actual, rerr := s.productoRepo.FindByIDTx(ctx, tx, d.ProductoID); rerr == nil {
						disponible = actual.Stock
					}
					return &StockInsuficienteError{
						ProductoID: d.ProductoID,
						Nombre:     productos[i].Nombre,
						Disponible: disponible,
						Solicitado: d.Cantidad,
					}
				}
				return derr
			}
		}

		venta = model.Venta{
			ClienteID: clienteID,
			UsuarioID: usuarioID,
			Subtotal:  subtotal,
			Impuestos: impuestos,
			Total:     total,
			Estado:    model.EstadoCompletada,
			Activo:    true,
			Detalles:  detalles,
		}
		if cerr := s.ventaRepo.Create(ctx, tx, &venta); cerr != nil {
			return cerr
		}

		for i, d := range venta.Detalles {
			detallesResp = append(detallesResp, dto.DetalleVentaResponse{
				ProductoID:     d.ProductoID.String(),
				Producto:       productos[i].Nombre,
				Cantidad:       d.Cantidad,
				PrecioUnitario: d.PrecioUnitario,
				Subtotal:       d.Subtotal,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil && cliente.Correo != nil && *cliente.Correo != "" {
		if qerr := s.dispatcher.EnqueueRecibo(ctx, venta.ID, *cliente.Correo); qerr != nil {
			log.Warn().Err(qerr).Str("venta_id", venta.ID.String()).Msg("no se pudo encolar el recibo")
		}
	}

	return &dto.VentaResponse{
		ID:        venta.ID.String(),
		ClienteID: clienteID.String(),
		Cliente:   cliente.Nombre,
		UsuarioID: usuarioID.String(),
		Usuario:   usuario.Nombre,
		Detalles:  detallesResp,
		Subtotal:  venta.Subtotal,
		Impuestos: venta.Impuestos,
		Total:     venta.Total,
		Estado:    venta.Estado,
		Activo:    venta.Activo,
		CreatedAt: venta.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// AnularVenta marks a sale ANULADA. Voiding does not restore stock.
func (s *VentaService) AnularVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.ventaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "venta", ID: id.String()}
		}
		return nil, err
	}
	if !venta.Activo {
		return nil, &NotFoundError{Entidad: "venta", ID: id.String()}
	}
	if venta.Estado == model.EstadoAnulada {
		return nil, ErrVentaYaAnulada
	}
	if err := s.ventaRepo.UpdateEstado(ctx, id, model.EstadoAnulada); err != nil {
		return nil, err
	}
	venta.Estado = model.EstadoAnulada
	resp := toVentaResponse(venta)
	return &resp, nil
}

// EliminarVenta soft-deactivates a sale so it disappears from listings.
// Estado and stock are untouched.
func (s *VentaService) EliminarVenta(ctx context.Context, id uuid.UUID) error {
	venta, err := s.ventaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "venta", ID: id.String()}
		}
		return err
	}
	if !venta.Activo {
		return &NotFoundError{Entidad: "venta", ID: id.String()}
	}
	return s.ventaRepo.Desactivar(ctx, id)
}

func (s *VentaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.ventaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "venta", ID: id.String()}
		}
		return nil, err
	}
	if !venta.Activo {
		return nil, &NotFoundError{Entidad: "venta", ID: id.String()}
	}
	resp := toVentaResponse(venta)
	return &resp, nil
}

func (s *VentaService) ListarVentas(ctx context.Context, filter dto.VentaFilter) ([]dto.VentaResponse, error) {
	ventas, err := s.ventaRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toVentaResponses(ventas), nil
}

func (s *VentaService) ListarVentasPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.VentaResponse, error) {
	ventas, err := s.ventaRepo.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return toVentaResponses(ventas), nil
}

func (s *VentaService) ListarVentasPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.VentaResponse, error) {
	ventas, err := s.ventaRepo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return toVentaResponses(ventas), nil
}

func toVentaResponse(v *model.Venta) dto.VentaResponse {
	resp := dto.VentaResponse{
		ID:        v.ID.String(),
		ClienteID: v.ClienteID.String(),
		UsuarioID: v.UsuarioID.String(),
		Subtotal:  v.Subtotal,
		Impuestos: v.Impuestos,
		Total:     v.Total,
		Estado:    v.Estado,
		Activo:    v.Activo,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if v.Cliente != nil {
		resp.Cliente = v.Cliente.Nombre
	}
	if v.Usuario != nil {
		resp.Usuario = v.Usuario.Nombre
	}
	resp.Detalles = make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		dr := dto.DetalleVentaResponse{
			ProductoID:     d.ProductoID.String(),
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		}
		if d.Producto != nil {
			dr.Producto = d.Producto.Nombre
		}
		resp.Detalles = append(resp.Detalles, dr)
	}
	return resp
}

func toVentaResponses(ventas []model.Venta) []dto.VentaResponse {
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, toVentaResponse(&ventas[i]))
	}
	return out
}
