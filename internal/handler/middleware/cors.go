package middleware

import (
	"log/slog"
	"slices"

	"do-coupon-system/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows the configured front-end origins with credentials so
// the session cookie set by /login travels with scanner requests. Origins may use
// a single "*" wildcard segment, e.g. https://*.example.com.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := cfg.ExposeHeaders
	if !slices.Contains(expose, RequestIDHeader) {
		expose = append(slices.Clone(expose), RequestIDHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		AllowWildcard:    true,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		slog.Any("allow_origins", cfg.AllowOrigins),
		slog.Bool("allow_credentials", cfg.AllowCredentials),
	)
	return cors.New(corsCfg)
}
