package router

import (
	"time"

	"github.com/rafaelmsj/commandSystem/internal/config"
	"github.com/rafaelmsj/commandSystem/internal/handler"
	"github.com/rafaelmsj/commandSystem/internal/middleware"
	"github.com/rafaelmsj/commandSystem/internal/repository"
	"github.com/rafaelmsj/commandSystem/internal/service"
	"github.com/rafaelmsj/commandSystem/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	movRepo := repository.NewMovimentacaoEstoqueRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	comandaRepo := repository.NewComandaRepository(db)
	lancamentoRepo := repository.NewLancamentoRepository(db)
	pagamentoRepo := repository.NewPagamentoRepository(db)
	premioRepo := repository.NewPremioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	estoqueSvc := service.NewEstoqueService(produtoRepo, movRepo, rdb, dispatcher)
	produtoSvc := service.NewProdutoService(produtoRepo, estoqueSvc)
	clienteSvc := service.NewClienteService(clienteRepo)
	comandaSvc := service.NewComandaService(comandaRepo, clienteRepo)
	lancamentoSvc := service.NewLancamentoService(lancamentoRepo, comandaRepo, produtoRepo, estoqueSvc, comandaSvc)
	pagamentoSvc := service.NewPagamentoService(pagamentoRepo, comandaRepo, comandaSvc)
	premioSvc := service.NewPremioService(premioRepo, produtoRepo, clienteRepo, estoqueSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	estoqueH := handler.NewEstoqueHandler(estoqueSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	comandasH := handler.NewComandasHandler(comandaSvc, lancamentoSvc, pagamentoSvc)
	premiosH := handler.NewPremiosHandler(premioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		// Catalog: all authenticated users can read, administrador writes
		v1.GET("/produtos", produtosH.Listar)
		v1.GET("/produtos/:id", produtosH.ObterPorID)
		prods := v1.Group("/produtos", middleware.RequireRole("administrador"))
		{
			prods.POST("", produtosH.Criar)
			prods.PUT("/:id", produtosH.Atualizar)
		}

		// Stock ledger
		estoque := v1.Group("/estoque")
		{
			estoque.GET("/movimentacoes", estoqueH.ListarMovimentacoes)
			estoque.GET("/baixo", estoqueH.EstoqueBaixo)
			estoque.GET("/reconciliacao/:produto_id", estoqueH.Reconciliar)
			estoque.POST("/movimentacoes", middleware.RequireRole("administrador"), estoqueH.RegistrarMovimentacao)
		}

		// Clientes
		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Criar)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObterPorID)
			clientes.PUT("/:id", clientesH.Atualizar)
		}

		// Comandas, lançamentos and pagamentos
		comandas := v1.Group("/comandas")
		{
			comandas.POST("", comandasH.Abrir)
			comandas.GET("", comandasH.Listar)
			comandas.GET("/:id", comandasH.ObterPorID)
			comandas.POST("/:id/fechar", comandasH.Fechar)
			comandas.POST("/:id/recalcular", middleware.RequireRole("administrador"), comandasH.Recalcular)
			comandas.GET("/:id/lancamentos", comandasH.ListarLancamentos)
			comandas.GET("/:id/pagamentos", comandasH.ListarPagamentos)
		}
		v1.POST("/lancamentos", comandasH.CriarLancamento)
		v1.DELETE("/lancamentos/:id", comandasH.ExcluirLancamento)
		v1.POST("/pagamentos", comandasH.CriarPagamento)
		v1.DELETE("/pagamentos/:id", middleware.RequireRole("administrador"), comandasH.ExcluirPagamento)

		// Prêmios
		premios := v1.Group("/premios")
		{
			premios.POST("", premiosH.Criar)
			premios.GET("", premiosH.Listar)
			premios.PATCH("/:id/entrega", premiosH.AtualizarEntrega)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
