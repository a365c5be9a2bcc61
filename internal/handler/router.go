package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trip-booking/internal/handler/api"
	"trip-booking/internal/handler/middleware"
	"trip-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Health      *api.HealthHandler
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Admin       *api.AdminHandler
	Webhook     *api.WebhookHandler
	Events      *api.EventsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be outermost to catch panics from the rest of the chain.
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)
	mountSwagger(engine)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/webhooks"), []route{
			{Method: http.MethodPost, Path: "/mercadopago", Handler: h.Webhook.MercadoPago},
		})

		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "/:code", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:code/preference", Handler: h.Reservation.CreatePreference},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Admin.List},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Admin.Summary},
				{Method: http.MethodGet, Path: "/reservations/:code/payments", Handler: h.Admin.ListPayments},
				{Method: http.MethodPost, Path: "/reservations/:code/transfers", Handler: h.Admin.RecordTransfer},
				{Method: http.MethodPost, Path: "/reservations/:code/cancel", Handler: h.Admin.Cancel},
				{Method: http.MethodPost, Path: "/reservations/:code/recompute", Handler: h.Admin.Recompute},
				{Method: http.MethodGet, Path: "/events", Handler: h.Events.Stream},
			})
		}
	}
}

// mountSwagger serves the API docs UI in debug mode only.
func mountSwagger(engine *gin.Engine) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
