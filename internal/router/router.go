package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/amara-health/his-api/internal/handler"
	"github.com/amara-health/his-api/internal/middleware"
	"github.com/amara-health/his-api/internal/service"
	"github.com/amara-health/his-api/pkg/config"
	"github.com/amara-health/his-api/pkg/logger"
	corsmiddleware "github.com/amara-health/his-api/pkg/middleware/cors"
	reqidmiddleware "github.com/amara-health/his-api/pkg/middleware/requestid"
	"github.com/amara-health/his-api/pkg/response"
)

const banner = "Health Information System"

// Deps bundles everything the route table needs.
type Deps struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *service.MetricsService
	Programs    *handler.ProgramHandler
	Clients     *handler.ClientHandler
	Enrollments *handler.EnrollmentHandler
}

// New assembles the gin engine with the common middleware chain and the
// route table. Only the three mutating routes carry the API key guard.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(deps.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/", func(c *gin.Context) {
		response.Text(c, http.StatusOK, banner)
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	guard := middleware.APIKey(deps.Config.Auth)

	r.POST("/programs", guard, deps.Programs.Create)
	r.GET("/programs", deps.Programs.List)

	r.POST("/clients", guard, deps.Clients.Register)
	r.GET("/clients", deps.Clients.Search)
	r.GET("/clients/:id", deps.Clients.Profile)
	r.POST("/clients/:id/programs", guard, deps.Enrollments.Enroll)

	if deps.Config.Exports.Enabled {
		r.GET("/clients/:id/export", deps.Clients.Export)
	}

	if deps.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
