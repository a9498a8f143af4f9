package routes

import (
	"errors"
	"fmt"
	"net/http"

	_ "metalshop/docs" // swagger docs
	"metalshop/internal/adapter/http/handlers"
	"metalshop/internal/adapter/http/middleware"
	"metalshop/internal/infrastructure/config"
	"metalshop/internal/infrastructure/logger"
	"metalshop/internal/infrastructure/metrics"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathPing     = "/ping"
	PathMetrics  = "/metrics"
	PathSwagger  = "/swagger/*any"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathV1       = "/v1"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Jobs              *handlers.JobHandler
	LaborEntries      *handlers.LaborEntryHandler
	MaterialPurchases *handlers.MaterialPurchaseHandler
	Payments          *handlers.PaymentHandler
	Offers            *handlers.OfferHandler
	Contracts         *handlers.ContractHandler
	PaymentPlans      *handlers.PaymentPlanHandler
	Files             *handlers.FileHandler
	Workers           *handlers.WorkerHandler
	Suppliers         *handlers.SupplierHandler
	Materials         *handlers.MaterialHandler
	Dashboard         *handlers.DashboardHandler
	Auth              *handlers.AuthHandler
}

// Run wires the application from cfg and blocks serving HTTP.
func Run(cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := build(cfg)
	if err != nil {
		return err
	}

	router := NewRouter(app.handlers, app.tokens, app.metrics, cfg.Server.CORSAllowedOrigins)

	logger.GetLogger().Info("[server] starting",
		append(cfg.LogFields(), zap.String("port", cfg.Server.Port))...)

	if err := router.Run(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine. Everything under /v1 requires a bearer
// token; ping, metrics, swagger and the auth endpoints are public.
func NewRouter(h Handlers, tokens middleware.TokenValidator, m *metrics.Metrics, corsOrigins []string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m, corsOrigins)

	router.GET(PathPing, handlers.Ping)
	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))
	if m != nil {
		router.GET(PathMetrics, gin.WrapH(m.Handler()))
	}
	if h.Auth != nil {
		router.POST(PathLogin, h.Auth.Login)
		router.POST(PathRegister, h.Auth.Register)
	}

	v1 := router.Group(PathV1, middleware.Auth(tokens))
	addJobRoutes(v1, h)
	addJobChildrenRoutes(v1, h)
	addCatalogRoutes(v1, h)
	if h.Dashboard != nil {
		v1.GET(PathDashboard, h.Dashboard.GetDashboard)
	}

	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics, corsOrigins []string) {
	router.Use(logger.Middleware())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(corsOrigins))
	// promhttp negotiates its own compression
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{PathMetrics})))
	if m != nil {
		router.Use(m.Middleware())
	}
}
