package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-intake/internal/handler/api"
	"booking-intake/internal/handler/middleware"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, intake *metrics.Intake, bookingHandler *api.BookingHandler, vehicleHandler *api.VehicleHandler) {
	setupMiddleware(engine, cfg, intake)
	setupRoutes(engine, intake, bookingHandler, vehicleHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, intake *metrics.Intake) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(intake))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, intake *metrics.Intake, bookingHandler *api.BookingHandler, vehicleHandler *api.VehicleHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(intake.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/vehicles", Handler: vehicleHandler.List},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Submit},
				{Method: http.MethodPost, Path: "/validate", Handler: bookingHandler.Validate},
				{Method: http.MethodPost, Path: "/quote", Handler: bookingHandler.Quote},
				{Method: http.MethodPost, Path: "/whatsapp", Handler: bookingHandler.WhatsApp},
				{Method: http.MethodGet, Path: "/throttle", Handler: bookingHandler.ThrottleStatus},
			})

			if gin.Mode() == gin.DebugMode {
				addRoutes(bookings, []route{
					{Method: http.MethodDelete, Path: "/throttle", Handler: bookingHandler.ResetThrottle},
				})
			}
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
