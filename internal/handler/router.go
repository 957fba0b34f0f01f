package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"timeshare-portal/internal/handler/api"
	"timeshare-portal/internal/handler/middleware"
	"timeshare-portal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	propertyHandler *api.PropertyHandler,
	reservationHandler *api.ReservationHandler,
	exchangeHandler *api.ExchangeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, propertyHandler, reservationHandler, exchangeHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	propertyHandler *api.PropertyHandler,
	reservationHandler *api.ReservationHandler,
	exchangeHandler *api.ExchangeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		properties := apiGroup.Group("/properties")
		properties.Use(authMiddleware.RequireAuth())
		{
			adminOnly := []gin.HandlerFunc{authMiddleware.RequireAdmin()}
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "", Handler: propertyHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: propertyHandler.Get},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: reservationHandler.ListForProperty},
				{Method: http.MethodPost, Path: "", Handler: propertyHandler.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id/price", Handler: propertyHandler.UpdatePrice, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id/shares/:index", Handler: propertyHandler.AssignShare, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/:id/allocations", Handler: propertyHandler.RegenerateAllocations, Mw: adminOnly},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: reservationHandler.SetStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Delete},
			})
		}

		exchanges := apiGroup.Group("/exchanges")
		exchanges.Use(authMiddleware.RequireAuth())
		{
			addRoutes(exchanges, []route{
				{Method: http.MethodGet, Path: "/quote", Handler: exchangeHandler.Quote},
				{Method: http.MethodPost, Path: "", Handler: exchangeHandler.Book},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: exchangeHandler.SetStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: exchangeHandler.Delete},
			})
		}

		owners := apiGroup.Group("/owners")
		owners.Use(authMiddleware.RequireAuth())
		{
			addRoutes(owners, []route{
				{Method: http.MethodGet, Path: "/me/points", Handler: exchangeHandler.Balance},
			})
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
