package handlers

import (
	"pixel_portfolio/internal/logger"
	"pixel_portfolio/internal/service"

	"github.com/gin-gonic/gin"

	_ "pixel_portfolio/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultVersion = "1.0.0"

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	debug    bool
	version  string
	metrics  *httpMetrics
}

type Option func(*Handler)

// WithDebug exposes internal error causes in responses.
func WithDebug(debug bool) Option {
	return func(h *Handler) { h.debug = debug }
}

// WithVersion sets the version reported by / and /health.
func WithVersion(v string) Option {
	return func(h *Handler) {
		if v != "" {
			h.version = v
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		log:      log,
		version:  defaultVersion,
		metrics:  newHTTPMetrics(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
// Every API route is reachable both at the root and under /api.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), h.requestID, h.requestLogger, h.metrics.middleware)

	router.NoRoute(h.notFound)
	router.NoMethod(h.methodNotAllowed)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", h.metrics.handler())

	// Home page live feed
	router.GET("/ws", h.wsConnect)

	router.GET("/", h.index)
	router.GET("/api", h.index)

	h.registerAPIRoutes(&router.RouterGroup)
	h.registerAPIRoutes(router.Group("/api"))

	return router
}

func (h *Handler) registerAPIRoutes(g *gin.RouterGroup) {
	g.GET("/health", h.health)
	h.registerAuthRoutes(g)
	h.registerPostRoutes(g)
	h.registerProjectRoutes(g)
	h.registerSettingsRoutes(g)
}

func (h *Handler) registerAuthRoutes(g *gin.RouterGroup) {
	auth := g.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", h.me)
	}
}

func (h *Handler) registerPostRoutes(g *gin.RouterGroup) {
	posts := g.Group("/posts")
	{
		posts.GET("", h.listPosts)
		posts.GET("/:id", h.getPost)
		posts.POST("", h.requireUser, h.createPost)
		posts.PUT("/:id", h.requireUser, h.updatePost)
		posts.DELETE("/:id", h.requireUser, h.deletePost)
	}
}

func (h *Handler) registerProjectRoutes(g *gin.RouterGroup) {
	projects := g.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.POST("", h.requireUser, h.createProject)
		projects.PUT("/:id", h.requireUser, h.updateProject)
		projects.DELETE("/:id", h.requireUser, h.deleteProject)
	}
}

func (h *Handler) registerSettingsRoutes(g *gin.RouterGroup) {
	settings := g.Group("/settings")
	{
		settings.GET("", h.listSettings)
		settings.GET("/:key", h.getSetting)
		settings.PUT("/:key", h.requireUser, h.putSetting)
	}
}
