package handler

import (
	"net/http"

	"github.com/romainbeka/dashboardsteph/internal/handler/api"
	"github.com/romainbeka/dashboardsteph/internal/handler/middleware"
	"github.com/romainbeka/dashboardsteph/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	JDR       *api.JDRHandler
	Reduction *api.ReductionHandler
	Upload    *api.UploadHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.RequestLogging())
	engine.Use(middleware.ErrorHandler())

	engine.HandleMethodNotAllowed = true
	engine.NoMethod(middleware.MethodNotAllowed())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/jdr"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.JDR.List},
			{Method: http.MethodPost, Path: "", Handler: h.JDR.Create, Mw: []gin.HandlerFunc{middleware.BodyLimit(cfg.Storage.MaxUploadBytes)}},
			{Method: http.MethodDelete, Path: "", Handler: h.JDR.Delete},
			{Method: http.MethodGet, Path: "/audit", Handler: h.JDR.Audit},
		})

		addRoutes(apiGroup.Group("/reduction"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reduction.List},
		})
	}

	addRoutes(engine.Group(cfg.Storage.UploadURLPrefix), []route{
		{Method: http.MethodGet, Path: "/*image", Handler: h.Upload.Serve},
	})
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
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
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

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
