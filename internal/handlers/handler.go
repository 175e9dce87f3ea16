package handlers

import (
	"embed"
	"html/template"

	"wordbook/internal/logger"
	"wordbook/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cookie   SessionCookie
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cookie SessionCookie) *Handler {
	return &Handler{services: services, log: logger.OrNop(log), cookie: cookie.withDefaults()}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.requestIDMiddleware, h.accessLogMiddleware, gin.Recovery())
	router.SetHTMLTemplate(pageTemplates)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	// HTML pages
	h.registerPageRoutes(router)

	// JSON login
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.pageSessionMiddleware, h.indexPage)
	r.GET("/login", h.loginPage)
	r.POST("/login", h.loginSubmit)
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.sessionMiddleware)
	{
		h.registerCategoryRoutes(api)
		api.GET("/ws", h.wsConnect)
	}
}

func (h *Handler) registerCategoryRoutes(api *gin.RouterGroup) {
	words := api.Group("/words")
	{
		words.GET("", h.listCategories)
		words.POST("", h.createCategory)
		words.GET("/:category_id", h.listWords)
		words.POST("/:category_id", h.createWord)
		words.PATCH("/:category_id", h.renameCategory)
		words.DELETE("/:category_id", h.deleteCategory)
		words.DELETE("/:category_id/:word_id", h.deleteWord)
	}
}
