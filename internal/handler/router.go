package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/handler/api"
	"do-coupon-system/internal/handler/middleware"
	"do-coupon-system/internal/infra/metrics"
	"do-coupon-system/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Coupon     *api.CouponHandler
	Membership *api.MembershipHandler
	History    *api.HistoryHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	couponHandler *api.CouponHandler,
	membershipHandler *api.MembershipHandler,
	historyHandler *api.HistoryHandler,
	authMiddleware *middleware.AuthMiddleware,
	m *metrics.Metrics,
	logger *slog.Logger,
) {
	h := Handlers{
		Auth:       authHandler,
		Coupon:     couponHandler,
		Membership: membershipHandler,
		History:    historyHandler,
	}
	setupMiddleware(engine, cfg, m, logger)
	setupRoutes(engine, h, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(m.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Paths the existing front-end already calls.
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		{Method: http.MethodPost, Path: "/verify-session", Handler: h.Auth.VerifySession},
		{Method: http.MethodPost, Path: "/validate-coupon", Handler: h.Coupon.Validate},
		{Method: http.MethodPost, Path: "/use-coupon", Handler: h.Coupon.Use},
		{Method: http.MethodPost, Path: "/create-active-coupon", Handler: h.Coupon.Create},
		{Method: http.MethodPost, Path: "/record-md-deduction", Handler: h.Membership.RecordDeduction},
		{Method: http.MethodGet, Path: "/coupons/:hash/qr", Handler: h.Coupon.QR},
	})

	authRequired := engine.Group("")
	authRequired.Use(authMiddleware.RequireAuth())
	addRoutes(authRequired, []route{
		{
			Method:  http.MethodGet,
			Path:    "/coupons",
			Handler: h.Coupon.List,
			Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(account.RoleAdmin, account.RoleProvider)},
		},
		{Method: http.MethodGet, Path: "/history", Handler: h.History.List},
		{Method: http.MethodPost, Path: "/membership/lookup", Handler: h.Membership.Lookup},
		{Method: http.MethodPost, Path: "/membership/deduct", Handler: h.Membership.Deduct},
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
