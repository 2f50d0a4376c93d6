package handlers

import (
	"time"

	"wardrobe_catalog/internal/logger"
	"wardrobe_catalog/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	allowedOrigins []string
	feedInterval   time.Duration
}

// Option tweaks optional Handler settings.
type Option func(*Handler)

// WithAllowedOrigins sets CORS origins; "*" allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) { h.allowedOrigins = origins }
}

// WithFeedInterval sets the default tick of the wardrobe websocket feed.
func WithFeedInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 && d <= maxInterval {
			h.feedInterval = d
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:       services,
		log:            log,
		allowedOrigins: []string{"*"},
		feedInterval:   defaultInterval,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.requestLogger, gin.CustomRecovery(h.recoverServerError), cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	api := router.Group("/api")
	h.registerAuthRoutes(api)
	h.registerProtectedRoutes(api.Group("", h.userIdMiddleware))

	return router
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AddAllowHeaders("Authorization")
	cfg.AddExposeHeaders(requestIDHeader)
	if len(h.allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range h.allowedOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = h.allowedOrigins
	return cfg
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	api.POST("/register", h.register)
	api.POST("/login", h.login)
}

func (h *Handler) registerProtectedRoutes(api *gin.RouterGroup) {
	api.GET("/categories", h.listPredefinedCategories)
	api.GET("/seasons", h.listSeasons)

	wardrobe := api.Group("/wardrobe")
	{
		wardrobe.GET("/categories", h.listUserCategories)
		wardrobe.POST("/categories", h.addUserCategory)
		wardrobe.GET("/clothes/:category", h.listClothes)
		wardrobe.POST("/clothes", h.addCloth)
		wardrobe.PUT("/clothes/:id", h.updateCloth)
		wardrobe.DELETE("/clothes/:id", h.deleteCloth)
		// Live summary feed (HTTP upgrade) on the same port.
		wardrobe.GET("/ws", h.wsConnect)
	}
}
