package routes

import (
	"context"
	"fmt"
	"net/http"

	_ "repair_desk/docs" // generated by swag init
	"repair_desk/internal/adapter/http/handlers"
	"repair_desk/internal/adapter/http/middleware"
	"repair_desk/internal/adapter/persistence/repository"
	"repair_desk/internal/adapter/remote"
	"repair_desk/internal/config"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/infrastructure/database"
	"repair_desk/internal/usecase"
	"repair_desk/pkg/logger"
	"repair_desk/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathOrders    = "/order"
	PathParts     = "/parts"
	PathPayments  = "/payments"
	PathWarehouse = "/warehouse"
	PathSessions  = "/sessions"
)

// APIHandlers are the handlers of the repository service.
type APIHandlers struct {
	Orders   *handlers.OrderHandler
	Parts    *handlers.PartsHandler
	Payments *handlers.PaymentHandler
}

// RunAPI wires the repository service over DynamoDB and serves it.
func RunAPI(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	db := cfg.DynamoDB
	counter := repository.NewCounter(ddb, db.CountersTable)
	orderRepo := repository.NewOrderDynamoRepository(ddb, db.OrdersTable)
	warehouseRepo := repository.NewWarehouseDynamoRepository(ddb, db.WarehouseTable)
	diagnosticRepo := repository.NewDiagnosticDynamoRepository(ddb, db.TestsTable)
	partsRepo := repository.NewPartsDynamoRepository(ddb, db.PartsTable, db.WarehouseTable, counter)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, db.PaymentsTable, counter)

	if cfg.App.IsDev() {
		created, err := database.EnsureTables(ctx, ddb, db)
		if err != nil {
			return fmt.Errorf("ensure tables: %w", err)
		}
		if contains(created, db.OrdersTable) {
			if err := seedDevData(ctx, orderRepo, warehouseRepo); err != nil {
				return fmt.Errorf("seed dev data: %w", err)
			}
			log.Info(ctx, "dev data seeded")
		}
	}

	router := NewAPIRouter(cfg.Auth, log, APIHandlers{
		Orders:   handlers.NewOrderHandler(orderRepo, diagnosticRepo, log),
		Parts:    handlers.NewPartsHandler(partsRepo, warehouseRepo, log),
		Payments: handlers.NewPaymentHandler(paymentRepo, log),
	})

	log.Info(log.WithField(ctx, "port", cfg.App.APIPort), "repository service listening")
	return router.Run(":" + cfg.App.APIPort)
}

func NewAPIRouter(auth config.AuthConfig, log *logger.Logger, h APIHandlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	secured := v1.Group("")
	secured.Use(middleware.Auth(auth))
	addOrderRoutes(secured, h.Orders)
	addPartsRoutes(secured, h.Parts)
	addPaymentRoutes(secured, h.Payments)
	return router
}

// RunDesk wires the desk on top of the repository service and serves it.
func RunDesk(cfg *config.Config, log *logger.Logger) error {
	client, err := remote.NewClient(cfg.Desk.RepositoryURL, remote.WithTimeout(cfg.Desk.HTTPTimeout))
	if err != nil {
		return fmt.Errorf("repository client: %w", err)
	}

	orders := remote.NewOrderRepository(client)
	diagnostics := remote.NewDiagnosticRepository(client)
	parts := remote.NewPartsRepository(client)
	payments := usecase.NewPaymentReconciler(remote.NewPaymentRepository(client))
	saveMetrics := metrics.NewSaveMetrics(prometheus.DefaultRegisterer)

	store := usecase.NewSessionStore()
	go store.Sweep(context.Background(), cfg.Desk.SessionSweep, cfg.Desk.SessionIdleTTL, func(ids []string) {
		log.Info(log.WithField(context.Background(), "session_ids", ids), "idle sessions evicted")
	})

	sessions := usecase.NewOrderSessionUseCase(usecase.SessionDeps{
		Store:          store,
		Orders:         orders,
		Diagnostics:    diagnostics,
		Parts:          parts,
		Warehouse:      remote.NewWarehouseRepository(client),
		Payments:       payments,
		Sync:           usecase.NewOrderSyncUseCase(orders, diagnostics, parts, payments, saveMetrics, log),
		Logger:         log,
		SearchDebounce: cfg.Desk.SearchDebounce,
		SearchLimit:    cfg.Desk.SearchLimit,
	})

	router := NewDeskRouter(log, handlers.NewSessionHandler(sessions, log))
	log.Info(log.WithField(context.Background(), "port", cfg.App.DeskPort), "desk listening")
	return router.Run(":" + cfg.App.DeskPort)
}

func NewDeskRouter(log *logger.Logger, h *handlers.SessionHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	secured := v1.Group("")
	secured.Use(middleware.RequestContext())
	addSessionRoutes(secured, h)
	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.PUT("/:id/status", h.UpdateOrderStatus)
		orders.GET("/:id/incoming-test", h.GetTest(entities.DiagnosticModeIncoming))
		orders.PUT("/:id/incoming-test", h.PutTest(entities.DiagnosticModeIncoming))
		orders.GET("/:id/exit-test", h.GetTest(entities.DiagnosticModeExit))
		orders.PUT("/:id/exit-test", h.PutTest(entities.DiagnosticModeExit))
	}
}

func addPartsRoutes(rg *gin.RouterGroup, h *handlers.PartsHandler) {
	parts := rg.Group(PathParts)
	{
		parts.GET("/:order_id", h.ListParts)
		parts.POST("/:order_id/batch", h.InsertBatch)
		parts.PUT("/:order_id/parts/:line_id", h.UpdateLine)
		parts.DELETE("/:order_id/parts/:line_id", h.DeleteLine)
	}
	rg.GET(PathWarehouse+"/items", h.SearchWarehouse)
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/order/:order_id", h.GetByOrderID)
		payments.POST("", h.Create)
		payments.PUT("/:id", h.Update)
	}
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.Open)
		sessions.GET("/:id", h.Get)
		sessions.DELETE("/:id", h.Close)
		sessions.PATCH("/:id/order", h.EditOrder)
		sessions.PUT("/:id/labor", h.EditLabor)
		sessions.PUT("/:id/final-price", h.EditFinalPrice)
		sessions.GET("/:id/parts/search", h.SearchParts)
		sessions.POST("/:id/parts", h.AddPart)
		sessions.PUT("/:id/parts/:local_id", h.SetPartQuantity)
		sessions.DELETE("/:id/parts/:local_id", h.RemovePart)
		sessions.POST("/:id/checks/:mode/:check", h.ToggleCheck)
		sessions.POST("/:id/save", h.Save)
	}
}

func setMiddlewares(router *gin.Engine, log *logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
