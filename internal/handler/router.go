package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"scheduling-core/internal/domain/access"
	"scheduling-core/internal/handler/api"
	"scheduling-core/internal/handler/middleware"
	"scheduling-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers so the router signature stays stable as routes grow.
type Handlers struct {
	Schedule     *api.ScheduleHandler
	Slots        *api.SlotHandler
	Bookings     *api.BookingHandler
	Notification *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	can := authMiddleware.RequirePermission

	apiGroup := engine.Group("/api")
	providers := apiGroup.Group("/providers/:providerId")
	providers.Use(authMiddleware.RequireAuth())
	{
		addRoutes(providers, []route{
			{Method: http.MethodGet, Path: "/schedule", Handler: h.Schedule.Get, Mw: []gin.HandlerFunc{can(access.ViewSlots)}},
			{Method: http.MethodPut, Path: "/schedule", Handler: h.Schedule.Replace, Mw: []gin.HandlerFunc{can(access.EditSchedule)}},
			{Method: http.MethodGet, Path: "/slots", Handler: h.Slots.List, Mw: []gin.HandlerFunc{can(access.ViewSlots)}},
		})

		bookings := providers.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List, Mw: []gin.HandlerFunc{can(access.ViewBookings)}},
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create, Mw: []gin.HandlerFunc{can(access.BookSelfService)}},
			{Method: http.MethodPost, Path: "/manual", Handler: h.Bookings.CreateManual, Mw: []gin.HandlerFunc{can(access.BookManual)}},
			{Method: http.MethodPost, Path: "/collisions", Handler: h.Bookings.CheckCollisions, Mw: []gin.HandlerFunc{can(access.BookManual)}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get, Mw: []gin.HandlerFunc{can(access.ViewBookings)}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Bookings.Update, Mw: []gin.HandlerFunc{can(access.BookManual, access.BookSelfService)}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Bookings.Cancel, Mw: []gin.HandlerFunc{can(access.CancelBooking)}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Bookings.Delete, Mw: []gin.HandlerFunc{can(access.DeleteBooking)}},
		})

		notifications := providers.Group("/notifications")
		notifications.Use(can(access.AckNotifications))
		addRoutes(notifications, []route{
			{Method: http.MethodGet, Path: "/head", Handler: h.Notification.Head},
			{Method: http.MethodPost, Path: "/ack", Handler: h.Notification.Acknowledge},
		})
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
