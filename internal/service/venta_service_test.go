package service

import (
	"context"
	"sync"
	"testing"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ventaFixture struct {
	svc       *VentaService
	ventas    *ventaRepoStub
	productos *productoRepoStub
	clientes  *clienteRepoStub
	usuarios  *usuarioRepoStub
	config    *configuracionRepoStub
	clienteID uuid.UUID
	usuarioID uuid.UUID
	productoA uuid.UUID // $10.00
	productoB uuid.UUID // $5.00
}

func newVentaFixture(t *testing.T, impuesto string, stockA, stockB int) *ventaFixture {
	t.Helper()

	ventas := newVentaRepoStub()
	productos := newProductoRepoStub()
	clientes := newClienteRepoStub()
	usuarios := newUsuarioRepoStub()
	config := &configuracionRepoStub{}

	if impuesto != "" {
		pct, err := decimal.NewFromString(impuesto)
		require.NoError(t, err)
		config.cfg = &model.Configuracion{
			ID:                  model.ConfiguracionID,
			Moneda:              "COP",
			ImpuestosPorcentaje: pct,
		}
	}

	f := &ventaFixture{
		svc:       NewVentaService(ventas, productos, clientes, usuarios, config, nil),
		ventas:    ventas,
		productos: productos,
		clientes:  clientes,
		usuarios:  usuarios,
		config:    config,
	}

	f.clienteID = clientes.add(model.Cliente{Nombre: "Ana Torres", Documento: "100200300", Activo: true})
	f.usuarioID = usuarios.add(model.Usuario{Nombre: "Carlos Ruiz", Correo: "carlos@tienda.local", Rol: "vendedor", Activo: true})
	f.productoA = productos.add(model.Producto{Nombre: "Cafe 500g", Precio: decimal.RequireFromString("10.00"), Stock: stockA, Activo: true})
	f.productoB = productos.add(model.Producto{Nombre: "Azucar 1kg", Precio: decimal.RequireFromString("5.00"), Stock: stockB, Activo: true})
	return f
}

func (f *ventaFixture) request(items ...dto.ItemVentaRequest) dto.RegistrarVentaRequest {
	return dto.RegistrarVentaRequest{
		ClienteID: f.clienteID.String(),
		UsuarioID: f.usuarioID.String(),
		Items:     items,
	}
}

func TestRegistrarVentaCalculaTotales(t *testing.T) {
	f := newVentaFixture(t, "19", 10, 10)

	resp, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 2},
		dto.ItemVentaRequest{ProductoID: f.productoB.String(), Cantidad: 1},
	))
	require.NoError(t, err)

	assert.Equal(t, "25.00", resp.Subtotal.StringFixed(2))
	assert.Equal(t, "4.75", resp.Impuestos.StringFixed(2))
	assert.Equal(t, "29.75", resp.Total.StringFixed(2))
	assert.Equal(t, model.EstadoCompletada, resp.Estado)
	assert.True(t, resp.Activo)
	assert.Len(t, resp.Detalles, 2)
	assert.Equal(t, "Ana Torres", resp.Cliente)
	assert.Equal(t, "Carlos Ruiz", resp.Usuario)
}

func TestRegistrarVentaDescuentaStock(t *testing.T) {
	f := newVentaFixture(t, "0", 10, 10)

	_, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 3},
		dto.ItemVentaRequest{ProductoID: f.productoB.String(), Cantidad: 4},
	))
	require.NoError(t, err)

	assert.Equal(t, 7, f.productos.stock(f.productoA))
	assert.Equal(t, 6, f.productos.stock(f.productoB))
}

func TestRegistrarVentaSinConfiguracionImpuestosCero(t *testing.T) {
	f := newVentaFixture(t, "", 10, 10)

	resp, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 1},
	))
	require.NoError(t, err)

	assert.Equal(t, "10.00", resp.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", resp.Impuestos.StringFixed(2))
	assert.Equal(t, "10.00", resp.Total.StringFixed(2))
}

func TestRegistrarVentaTrasCrearConfiguracion(t *testing.T) {
	f := newVentaFixture(t, "", 10, 10)
	configSvc := NewConfiguracionService(f.config)

	pct := decimal.RequireFromString("19")
	_, err := configSvc.Crear(context.Background(), dto.CrearConfiguracionRequest{
		NombreTienda:        "Tienda Nueva",
		ImpuestosPorcentaje: &pct,
	})
	require.NoError(t, err)

	resp, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 2},
		dto.ItemVentaRequest{ProductoID: f.productoB.String(), Cantidad: 1},
	))
	require.NoError(t, err)

	assert.Equal(t, "4.75", resp.Impuestos.StringFixed(2))
	assert.Equal(t, "29.75", resp.Total.StringFixed(2))
}

func TestRegistrarVentaRedondeaPorLinea(t *testing.T) {
	f := newVentaFixture(t, "19", 10, 10)
	productoC := f.productos.add(model.Producto{
		Nombre: "Tornillo", Precio: decimal.RequireFromString("0.33"), Stock: 100, Activo: true,
	})

	resp, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: productoC.String(), Cantidad: 3},
	))
	require.NoError(t, err)

	// 0.33 * 3 = 0.99; 19% = 0.1881 rounds to 0.19
	assert.Equal(t, "0.99", resp.Subtotal.StringFixed(2))
	assert.Equal(t, "0.19", resp.Impuestos.StringFixed(2))
	assert.Equal(t, "1.18", resp.Total.StringFixed(2))
}

func TestRegistrarVentaClienteInvalido(t *testing.T) {
	f := newVentaFixture(t, "19", 10, 10)

	req := f.request(dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 1})
	req.ClienteID = "no-es-uuid"

	_, err := f.svc.RegistrarVenta(context.Background(), req)
	var invalida *SolicitudInvalidaError
	require.ErrorAs(t, err, &invalida)
	assert.Equal(t, 0, f.ventas.count())
	assert.Equal(t, 10, f.productos.stock(f.productoA))
}

func TestRegistrarVentaClienteInactivo(t *testing.T) {
	f := newVentaFixture(t, "19", 10, 10)
	require.NoError(t, f.clientes.Desactivar(context.Background(), f.clienteID))

	_, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 1},
	))
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "cliente", notFound.Entidad)
	assert.Equal(t, 10, f.productos.stock(f.productoA))
}

func TestRegistrarVentaProductoInexistente(t *testing.T) {
	f := newVentaFixture(t, "19", 10, 10)

	_, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: uuid.NewString(), Cantidad: 1},
	))
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "producto", notFound.Entidad)
	assert.Equal(t, 0, f.ventas.count())
}

func TestRegistrarVentaProductoInactivo(t *testing.T) {
	f := newVentaFixture(t, "19", 10, 10)
	require.NoError(t, f.productos.Desactivar(context.Background(), f.productoA))

	_, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 1},
	))
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, f.ventas.count())
}

func TestRegistrarVentaStockInsuficiente(t *testing.T) {
	f := newVentaFixture(t, "19", 2, 10)

	_, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 3},
	))
	var stock *StockInsuficienteError
	require.ErrorAs(t, err, &stock)
	assert.Equal(t, 2, stock.Disponible)
	assert.Equal(t, 3, stock.Solicitado)
	assert.Equal(t, 0, f.ventas.count())
	assert.Equal(t, 2, f.productos.stock(f.productoA))
}

func TestRegistrarVentaConcurrenteNoSobrevende(t *testing.T) {
	f := newVentaFixture(t, "0", 5, 10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.RegistrarVenta(context.Background(), f.request(
				dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 3},
			))
		}(i)
	}
	wg.Wait()

	fallidas := 0
	for _, err := range errs {
		if err != nil {
			var stock *StockInsuficienteError
			require.ErrorAs(t, err, &stock)
			fallidas++
		}
	}
	assert.Equal(t, 1, fallidas, "exactamente una venta debe fallar")
	assert.Equal(t, 2, f.productos.stock(f.productoA))
	assert.Equal(t, 1, f.ventas.count())
}

func TestRegistrarVentaDobleEnvioCreaDosVentas(t *testing.T) {
	f := newVentaFixture(t, "0", 10, 10)
	req := f.request(dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 2})

	_, err := f.svc.RegistrarVenta(context.Background(), req)
	require.NoError(t, err)
	_, err = f.svc.RegistrarVenta(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, f.ventas.count())
	assert.Equal(t, 6, f.productos.stock(f.productoA))
}

func TestAnularVenta(t *testing.T) {
	f := newVentaFixture(t, "19", 10, 10)

	resp, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 4},
	))
	require.NoError(t, err)
	require.Equal(t, 6, f.productos.stock(f.productoA))

	id := uuid.MustParse(resp.ID)
	anulada, err := f.svc.AnularVenta(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoAnulada, anulada.Estado)

	// voiding never restores stock
	assert.Equal(t, 6, f.productos.stock(f.productoA))
}

func TestAnularVentaYaAnulada(t *testing.T) {
	f := newVentaFixture(t, "19", 10, 10)

	resp, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 1},
	))
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	_, err = f.svc.AnularVenta(context.Background(), id)
	require.NoError(t, err)

	_, err = f.svc.AnularVenta(context.Background(), id)
	assert.ErrorIs(t, err, ErrVentaYaAnulada)

	venta, err := f.svc.ObtenerVenta(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoAnulada, venta.Estado)
}

func TestAnularVentaInexistente(t *testing.T) {
	f := newVentaFixture(t, "19", 10, 10)

	_, err := f.svc.AnularVenta(context.Background(), uuid.New())
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestEliminarVentaOcultaDeListados(t *testing.T) {
	f := newVentaFixture(t, "0", 10, 10)

	resp, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 1},
	))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	require.NoError(t, f.svc.EliminarVenta(context.Background(), id))

	_, err = f.svc.ObtenerVenta(context.Background(), id)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	ventas, err := f.svc.ListarVentas(context.Background(), dto.VentaFilter{Activo: "true"})
	require.NoError(t, err)
	assert.Empty(t, ventas)

	// still visible when explicitly asking for inactive records
	inactivas, err := f.svc.ListarVentas(context.Background(), dto.VentaFilter{Activo: "false"})
	require.NoError(t, err)
	assert.Len(t, inactivas, 1)
}

func TestListarVentasPorCliente(t *testing.T) {
	f := newVentaFixture(t, "0", 10, 10)

	_, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 1},
	))
	require.NoError(t, err)

	ventas, err := f.svc.ListarVentasPorCliente(context.Background(), f.clienteID)
	require.NoError(t, err)
	assert.Len(t, ventas, 1)

	otras, err := f.svc.ListarVentasPorCliente(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, otras)
}

type dispatcherStub struct {
	mu       sync.Mutex
	enqueued []string
}

func (d *dispatcherStub) EnqueueRecibo(_ context.Context, _ uuid.UUID, correo string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enqueued = append(d.enqueued, correo)
	return nil
}

func TestReciboSoloConCorreo(t *testing.T) {
	f := newVentaFixture(t, "0", 10, 10)
	dispatcher := &dispatcherStub{}
	f.svc = NewVentaService(f.ventas, f.productos, f.clientes, f.usuarios, f.config, dispatcher)

	// cliente without correo: no receipt
	_, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 1},
	))
	require.NoError(t, err)
	assert.Empty(t, dispatcher.enqueued)

	correo := "ana@correo.local"
	conCorreo := f.clientes.add(model.Cliente{
		Nombre: "Ana Con Correo", Documento: "900800700", Correo: &correo, Activo: true,
	})
	req := f.request(dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 1})
	req.ClienteID = conCorreo.String()

	_, err = f.svc.RegistrarVenta(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, dispatcher.enqueued, 1)
	assert.Equal(t, correo, dispatcher.enqueued[0])
}

func TestPrecioCongeladoEnDetalle(t *testing.T) {
	f := newVentaFixture(t, "0", 10, 10)

	resp, err := f.svc.RegistrarVenta(context.Background(), f.request(
		dto.ItemVentaRequest{ProductoID: f.productoA.String(), Cantidad: 1},
	))
	require.NoError(t, err)

	// later price change must not alter the stored snapshot
	p, err := f.productos.FindByID(context.Background(), f.productoA)
	require.NoError(t, err)
	p.Precio = decimal.RequireFromString("99.99")
	require.NoError(t, f.productos.Update(context.Background(), p))

	venta, err := f.svc.ObtenerVenta(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	require.Len(t, venta.Detalles, 1)
	assert.Equal(t, "10.00", venta.Detalles[0].PrecioUnitario.StringFixed(2))
}
