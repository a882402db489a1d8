package handlers

import (
	"net/http"

	"cooking_probe/internal/logger"
	"cooking_probe/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// maxUploadBytes caps multipart log uploads.
const maxUploadBytes = 32 << 20

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler accepts a nil logger (tests).
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds the Gin router with every route registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = maxUploadBytes

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	// public, stateless
	router.POST("/calculate_heat_transfer", h.calculateHeatTransfer)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.authenticate)
	{
		h.registerAnalysisRoutes(api)
		h.registerRecorderRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerAnalysisRoutes(api *gin.RouterGroup) {
	analysis := api.Group("/analysis")
	{
		analysis.POST("/clean", h.cleanLog)
		analysis.POST("/fit", h.fitLog)
		analysis.POST("/time-to-target", h.timeToTarget)
	}
}

func (h *Handler) registerRecorderRoutes(api *gin.RouterGroup) {
	rec := api.Group("/recorder")
	{
		rec.POST("/start", h.startRecorder)
		rec.POST("/stop", h.stopRecorder)
		rec.GET("/status", h.recorderStatus)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}

// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
