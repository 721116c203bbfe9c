package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil so runTx executes the
// transactional closure directly.

type ventaRepoStub struct {
	mu     sync.Mutex
	ventas map[uuid.UUID]*model.Venta
}

func newVentaRepoStub() *ventaRepoStub {
	return &ventaRepoStub{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (s *ventaRepoStub) DB() *gorm.DB { return nil }

func (s *ventaRepoStub) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	for i := range v.Detalles {
		if v.Detalles[i].ID == uuid.Nil {
			v.Detalles[i].ID = uuid.New()
		}
		v.Detalles[i].VentaID = v.ID
	}
	clone := *v
	s.ventas[v.ID] = &clone
	return nil
}

func (s *ventaRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *v
	return &clone, nil
}

func (s *ventaRepoStub) List(_ context.Context, filter dto.VentaFilter) ([]model.Venta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Venta
	for _, v := range s.ventas {
		switch filter.Activo {
		case "false":
			if v.Activo {
				continue
			}
		case "all":
		default:
			if !v.Activo {
				continue
			}
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *ventaRepoStub) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.Venta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Venta
	for _, v := range s.ventas {
		if v.ClienteID == clienteID && v.Activo {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *ventaRepoStub) ListByUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.Venta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Venta
	for _, v := range s.ventas {
		if v.UsuarioID == usuarioID && v.Activo {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *ventaRepoStub) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Estado = estado
	return nil
}

func (s *ventaRepoStub) Desactivar(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Activo = false
	return nil
}

func (s *ventaRepoStub) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ventas)
}

type productoRepoStub struct {
	mu        sync.Mutex
	productos map[uuid.UUID]*model.Producto
}

func newProductoRepoStub() *productoRepoStub {
	return &productoRepoStub{productos: make(map[uuid.UUID]*model.Producto)}
}

func (s *productoRepoStub) DB() *gorm.DB { return nil }

func (s *productoRepoStub) add(p model.Producto) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	clone := p
	s.productos[p.ID] = &clone
	return p.ID
}

func (s *productoRepoStub) stock(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productos[id].Stock
}

func (s *productoRepoStub) Create(_ context.Context, p *model.Producto) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	clone := *p
	s.productos[p.ID] = &clone
	return nil
}

func (s *productoRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *productoRepoStub) FindByIDTx(ctx context.Context, _ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return s.FindByID(ctx, id)
}

func (s *productoRepoStub) FindBySKU(_ context.Context, sku string) (*model.Producto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.productos {
		if p.SKU != nil && *p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *productoRepoStub) List(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Producto
	for _, p := range s.productos {
		if filter.Activo != "all" && filter.Activo != "false" && !p.Activo {
			continue
		}
		if filter.Nombre != "" && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(filter.Nombre)) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (s *productoRepoStub) Update(_ context.Context, p *model.Producto) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *p
	s.productos[p.ID] = &clone
	return nil
}

func (s *productoRepoStub) DescontarStockTx(_ context.Context, _ *gorm.DB, id uuid.UUID, cantidad int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productos[id]
	if !ok || p.Stock < cantidad {
		return repository.ErrStockInsuficiente
	}
	p.Stock -= cantidad
	return nil
}

func (s *productoRepoStub) AjustarStock(_ context.Context, id uuid.UUID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if delta < 0 && p.Stock < -delta {
		return repository.ErrStockInsuficiente
	}
	p.Stock += delta
	return nil
}

func (s *productoRepoStub) Desactivar(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (s *productoRepoStub) Reactivar(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.productos[id]; ok {
		p.Activo = true
	}
	return nil
}

type clienteRepoStub struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newClienteRepoStub() *clienteRepoStub {
	return &clienteRepoStub{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (s *clienteRepoStub) add(c model.Cliente) uuid.UUID {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := c
	s.clientes[c.ID] = &clone
	return c.ID
}

func (s *clienteRepoStub) Create(_ context.Context, c *model.Cliente) error {
	s.add(*c)
	return nil
}

func (s *clienteRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := s.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *clienteRepoStub) FindByDocumento(_ context.Context, documento string) (*model.Cliente, error) {
	for _, c := range s.clientes {
		if c.Documento == documento {
			clone := *c
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *clienteRepoStub) List(_ context.Context, _ string) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range s.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (s *clienteRepoStub) Update(_ context.Context, c *model.Cliente) error {
	clone := *c
	s.clientes[c.ID] = &clone
	return nil
}

func (s *clienteRepoStub) Desactivar(_ context.Context, id uuid.UUID) error {
	if c, ok := s.clientes[id]; ok {
		c.Activo = false
	}
	return nil
}

type usuarioRepoStub struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newUsuarioRepoStub() *usuarioRepoStub {
	return &usuarioRepoStub{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (s *usuarioRepoStub) add(u model.Usuario) uuid.UUID {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	clone := u
	s.usuarios[u.ID] = &clone
	return u.ID
}

func (s *usuarioRepoStub) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	clone := *u
	s.usuarios[u.ID] = &clone
	return nil
}

func (s *usuarioRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := s.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *usuarioRepoStub) FindByCorreo(_ context.Context, correo string) (*model.Usuario, error) {
	for _, u := range s.usuarios {
		if strings.EqualFold(u.Correo, correo) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *usuarioRepoStub) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range s.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *usuarioRepoStub) Update(_ context.Context, u *model.Usuario) error {
	clone := *u
	s.usuarios[u.ID] = &clone
	return nil
}

func (s *usuarioRepoStub) Desactivar(_ context.Context, id uuid.UUID) error {
	if u, ok := s.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

func (s *usuarioRepoStub) Reactivar(_ context.Context, id uuid.UUID) error {
	if u, ok := s.usuarios[id]; ok {
		u.Activo = true
	}
	return nil
}

type categoriaRepoStub struct {
	categorias map[uuid.UUID]*model.Categoria
}

func newCategoriaRepoStub() *categoriaRepoStub {
	return &categoriaRepoStub{categorias: make(map[uuid.UUID]*model.Categoria)}
}

func (s *categoriaRepoStub) add(c model.Categoria) uuid.UUID {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := c
	s.categorias[c.ID] = &clone
	return c.ID
}

func (s *categoriaRepoStub) Create(_ context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := *c
	s.categorias[c.ID] = &clone
	return nil
}

func (s *categoriaRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := s.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *categoriaRepoStub) FindByNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range s.categorias {
		if strings.EqualFold(c.Nombre, nombre) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *categoriaRepoStub) List(_ context.Context, _ string) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, c := range s.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (s *categoriaRepoStub) Update(_ context.Context, c *model.Categoria) error {
	clone := *c
	s.categorias[c.ID] = &clone
	return nil
}

func (s *categoriaRepoStub) Desactivar(_ context.Context, id uuid.UUID) error {
	if c, ok := s.categorias[id]; ok {
		c.Activo = false
	}
	return nil
}

type proveedorRepoStub struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newProveedorRepoStub() *proveedorRepoStub {
	return &proveedorRepoStub{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (s *proveedorRepoStub) Create(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	clone := *p
	s.proveedores[p.ID] = &clone
	return nil
}

func (s *proveedorRepoStub) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := s.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *proveedorRepoStub) FindByNIT(_ context.Context, nit string) (*model.Proveedor, error) {
	for _, p := range s.proveedores {
		if p.NIT == nit {
			clone := *p
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *proveedorRepoStub) List(_ context.Context, _ string) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range s.proveedores {
		out = append(out, *p)
	}
	return out, nil
}

func (s *proveedorRepoStub) Update(_ context.Context, p *model.Proveedor) error {
	clone := *p
	s.proveedores[p.ID] = &clone
	return nil
}

func (s *proveedorRepoStub) Desactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := s.proveedores[id]; ok {
		p.Activo = false
	}
	return nil
}

type configuracionRepoStub struct {
	cfg *model.Configuracion
}

func (s *configuracionRepoStub) Obtener(_ context.Context) (*model.Configuracion, error) {
	if s.cfg == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *s.cfg
	return &clone, nil
}

func (s *configuracionRepoStub) Crear(_ context.Context, c *model.Configuracion) error {
	if s.cfg != nil {
		return gorm.ErrDuplicatedKey
	}
	clone := *c
	clone.ID = model.ConfiguracionID
	s.cfg = &clone
	return nil
}

func (s *configuracionRepoStub) Actualizar(_ context.Context, c *model.Configuracion) error {
	clone := *c
	clone.ID = model.ConfiguracionID
	s.cfg = &clone
	return nil
}
