package router

import (
	"time"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/config"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/handler"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/middleware"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/repository"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/service"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	locationRepo := repository.NewFieldLocationRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	siteAuthRepo := repository.NewSiteAuthRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(siteAuthRepo, cfg)
	orderSvc := service.NewRowOrderService(settingRepo, productRepo)
	productSvc := service.NewProductService(productRepo, historyRepo, orderSvc, dispatcher)
	inventorySvc := service.NewInventoryService(productRepo, historyRepo, dispatcher)
	reportSvc := service.NewReportService(productRepo, historyRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg)
	productsH := handler.NewProductsHandler(productSvc, orderSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	locationsH := handler.NewLocationsHandler(locationRepo, productRepo)
	settingsH := handler.NewSettingsHandler(settingRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public — the gate itself must be reachable while locked)
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/check", authH.Check)
	}

	// Everything else sits behind the site password
	gate := middleware.SessionGate(authSvc)
	api := r.Group("/api", gate)
	{
		api.POST("/auth/change-password", authH.ChangePassword)

		products := api.Group("/products")
		{
			products.GET("", productsH.List)
			products.POST("", productsH.Create)
			products.GET("/order", productsH.GetOrder)
			products.POST("/order/move", productsH.MoveOrder)
			products.GET("/:id", productsH.GetByID)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		inv := api.Group("/inventory")
		{
			inv.POST("/adjust", inventoryH.Adjust)
			inv.GET("/history", inventoryH.History)
			inv.GET("/alerts", inventoryH.Alerts)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/inventory", reportsH.Inventory)
			reports.GET("/inventory/pdf", reportsH.InventoryPDF)
			reports.GET("/inventory/xlsx", reportsH.InventoryXLSX)
		}

		locations := api.Group("/field-locations")
		{
			locations.GET("", locationsH.List)
			locations.POST("", locationsH.Create)
			locations.DELETE("/:id", locationsH.Delete)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/:key", settingsH.Get)
			settings.PUT("/:key", settingsH.Put)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
