package router

import (
	"tiendapos/internal/config"
	"tiendapos/internal/handler"
	"tiendapos/internal/middleware"
	"tiendapos/internal/repository"
	"tiendapos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers into the HTTP engine.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher service.ReciboDispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ventaRepo := repository.NewVentaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	configRepo := repository.NewConfiguracionRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, clienteRepo, usuarioRepo, configRepo, dispatcher)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, proveedorRepo, rdb)
	clienteSvc := service.NewClienteService(clienteRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	configSvc := service.NewConfiguracionService(configRepo)
	authSvc := service.NewAuthService(usuarioRepo, cfg.JWTSecret, cfg.JWTExpirationHours)
	reporteSvc := service.NewReporteService(reporteRepo)

	ventaH := handler.NewVentaHandler(ventaSvc)
	productoH := handler.NewProductoHandler(productoSvc)
	clienteH := handler.NewClienteHandler(clienteSvc)
	categoriaH := handler.NewCategoriaHandler(categoriaSvc)
	proveedorH := handler.NewProveedorHandler(proveedorSvc)
	configH := handler.NewConfiguracionHandler(configSvc)
	authH := handler.NewAuthHandler(authSvc)
	usuarioH := handler.NewUsuarioHandler(authSvc)
	reporteH := handler.NewReporteHandler(reporteSvc)
	preciosH := handler.NewConsultaPreciosHandler(productoRepo, rdb)
	healthH := handler.NewHealthHandler(db, rdb)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.ErrorHandler(),
		middleware.RateLimiter(),
	)

	r.GET("/health", healthH.Check)

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/v1")

	// public
	v1.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)
	v1.GET("/precio/:sku", preciosH.Consultar)

	// authenticated
	auth := v1.Group("")
	auth.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		ventas := auth.Group("/ventas")
		{
			ventas.POST("", ventaH.Registrar)
			ventas.GET("", ventaH.Listar)
			ventas.GET("/:id", ventaH.Obtener)
			ventas.PUT("/:id/anular", ventaH.Anular)
			ventas.DELETE("/:id", ventaH.Eliminar)
			ventas.GET("/cliente/:id", ventaH.ListarPorCliente)
			ventas.GET("/usuario/:id", ventaH.ListarPorUsuario)
		}

		productos := auth.Group("/productos")
		{
			productos.POST("", productoH.Crear)
			productos.GET("", productoH.Listar)
			productos.GET("/:id", productoH.Obtener)
			productos.PUT("/:id", productoH.Actualizar)
			productos.PATCH("/:id/stock", middleware.RequireRole("administrador"), productoH.AjustarStock)
			productos.PATCH("/:id/reactivar", productoH.Reactivar)
			productos.DELETE("/:id", productoH.Eliminar)
		}

		clientes := auth.Group("/clientes")
		{
			clientes.POST("", clienteH.Crear)
			clientes.GET("", clienteH.Listar)
			clientes.GET("/:id", clienteH.Obtener)
			clientes.PUT("/:id", clienteH.Actualizar)
			clientes.DELETE("/:id", clienteH.Eliminar)
		}

		categorias := auth.Group("/categorias")
		{
			categorias.POST("", categoriaH.Crear)
			categorias.GET("", categoriaH.Listar)
			categorias.GET("/:id", categoriaH.Obtener)
			categorias.PUT("/:id", categoriaH.Actualizar)
			categorias.DELETE("/:id", categoriaH.Eliminar)
		}

		proveedores := auth.Group("/proveedores")
		{
			proveedores.POST("", proveedorH.Crear)
			proveedores.GET("", proveedorH.Listar)
			proveedores.GET("/:id", proveedorH.Obtener)
			proveedores.PUT("/:id", proveedorH.Actualizar)
			proveedores.DELETE("/:id", proveedorH.Eliminar)
		}

		// admin only
		admin := auth.Group("", middleware.RequireRole("administrador"))
		{
			usuarios := admin.Group("/usuarios")
			{
				usuarios.POST("", usuarioH.Crear)
				usuarios.GET("", usuarioH.Listar)
				usuarios.GET("/:id", usuarioH.Obtener)
				usuarios.PUT("/:id", usuarioH.Actualizar)
				usuarios.PATCH("/:id/reactivar", usuarioH.Reactivar)
				usuarios.DELETE("/:id", usuarioH.Eliminar)
			}

			admin.GET("/configuracion", configH.Obtener)
			admin.POST("/configuracion", configH.Crear)
			admin.PUT("/configuracion", configH.Actualizar)

			reportes := admin.Group("/reportes")
			{
				reportes.GET("/ganancias", reporteH.Ganancias)
				reportes.GET("/top-vendidos", reporteH.MasVendidos)
				reportes.GET("/menos-vendidos", reporteH.MenosVendidos)
			}
		}
	}

	return r
}
