package handler

import (
	"net/http"

	"civic-hub/internal/handler/api"
	"civic-hub/internal/handler/middleware"
	"civic-hub/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Resources     *api.ResourceHandler
	Bookings      *api.BookingHandler
	Assets        *api.AssetHandler
	Requests      *api.RequestHandler
	Households    *api.HouseholdHandler
	Notifications *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := []gin.HandlerFunc{authMiddleware.RequireAdmin()}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/resources"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Resources.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Resources.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Resources.Create, Mw: admin},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Resources.Update, Mw: admin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Resources.Delete, Mw: admin},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodGet, Path: "/calendar", Handler: h.Bookings.Calendar},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Bookings.Availability},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Submit},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Bookings.Edit},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Bookings.Decide, Mw: admin},
			{Method: http.MethodPatch, Path: "/:id/handover", Handler: h.Bookings.RecordHandover, Mw: admin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Bookings.Delete},
		})

		addRoutes(apiGroup.Group("/assets"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Assets.List},
			{Method: http.MethodGet, Path: "/borrow-logs", Handler: h.Assets.ListBorrowLogs},
			{Method: http.MethodGet, Path: "/borrow-logs/:id", Handler: h.Assets.GetBorrowLog},
			{Method: http.MethodPost, Path: "/borrow", Handler: h.Assets.Borrow},
			{Method: http.MethodPost, Path: "/return", Handler: h.Assets.Return},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Assets.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Assets.Create, Mw: admin},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Assets.Update, Mw: admin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Assets.Delete, Mw: admin},
		})

		addRoutes(apiGroup.Group("/requests"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Requests.Submit},
			{Method: http.MethodGet, Path: "", Handler: h.Requests.List, Mw: admin},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Requests.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Requests.Decide, Mw: admin},
		})
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/my-requests", Handler: h.Requests.ListMine},
			{Method: http.MethodGet, Path: "/my-household", Handler: h.Households.Mine},
			{Method: http.MethodGet, Path: "/my-household/persons", Handler: h.Households.MyPersons},
		})

		households := apiGroup.Group("/households")
		households.Use(authMiddleware.RequireAdmin())
		addRoutes(households, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Households.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Households.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Households.Create},
			{Method: http.MethodPost, Path: "/:id/members", Handler: h.Households.AddMember},
		})

		addRoutes(apiGroup.Group("/notifications"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Notifications.List},
			{Method: http.MethodPatch, Path: "/read-all", Handler: h.Notifications.MarkAllRead},
			{Method: http.MethodPatch, Path: "/:id/read", Handler: h.Notifications.MarkRead},
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
