//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"do-coupon-system/internal/handler/httperr"
	"do-coupon-system/internal/handler/middleware"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggingRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.LoggingMiddleware(logger, config.NewTestConfig().Log))
	r.Use(middleware.ErrorHandler())
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("store down"), httperr.Message("Server error"))
	})
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	t.Run("generates an id and echoes it", func(t *testing.T) {
		var buf bytes.Buffer
		w := httptest.PerformRequest(t, loggingRouter(&buf), http.MethodGet, "/ok", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		id := w.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, id)
		httptest.AssertJSONField(t, w, "request_id", id)
		assert.Contains(t, buf.String(), "request_id="+id)
		assert.Contains(t, buf.String(), "Request completed")
	})

	t.Run("keeps a caller supplied id", func(t *testing.T) {
		var buf bytes.Buffer
		w := httptest.PerformRequestWithHeaders(t, loggingRouter(&buf), http.MethodGet, "/ok", nil,
			map[string]string{middleware.RequestIDHeader: "scanner-42"})
		httptest.AssertHeaders(t, w, map[string]string{middleware.RequestIDHeader: "scanner-42"})
		httptest.AssertJSONField(t, w, "request_id", "scanner-42")
	})

	t.Run("probe paths stay below info", func(t *testing.T) {
		var buf bytes.Buffer
		w := httptest.PerformRequest(t, loggingRouter(&buf), http.MethodGet, "/health", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, buf.String())
	})
}

func TestErrorHandler_ServerErrors(t *testing.T) {
	t.Run("5xx is logged at error with the body kept", func(t *testing.T) {
		var buf bytes.Buffer
		w := httptest.PerformRequest(t, loggingRouter(&buf), http.MethodGet, "/fail", nil, "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		httptest.AssertJSONField(t, w, "message", "Server error")
		assert.True(t, strings.Contains(buf.String(), "level=ERROR"), buf.String())
	})

	t.Run("panic becomes a 500 with a request id", func(t *testing.T) {
		var buf bytes.Buffer
		w := httptest.PerformRequest(t, loggingRouter(&buf), http.MethodGet, "/panic", nil, "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{middleware.RequestIDHeader: ""})
	})
}
