//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"trip-booking/internal/handler/httperr"
	"trip-booking/internal/handler/middleware"
	"trip-booking/internal/pkg/config"
	"trip-booking/tests/common/httptest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.Recovery(discardLogger()))
	engine.Use(middleware.RequestLogger(discardLogger()))
	engine.Use(middleware.ErrorHandler(discardLogger()))
	return engine
}

func TestRequestLogger_RequestID(t *testing.T) {
	engine := newEngine()
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil, "")
		id := httptest.AssertRequestID(t, w)
		assert.Equal(t, id, w.Body.String())
		assert.Len(t, id, 16)
	})

	t.Run("keeps a well-formed incoming id", func(t *testing.T) {
		w := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil, "",
			httptest.WithHeader(middleware.RequestIDHeader, "mp-7f3a:91"))
		assert.Equal(t, "mp-7f3a:91", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces a hostile incoming id", func(t *testing.T) {
		w := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil, "",
			httptest.WithHeader(middleware.RequestIDHeader, "bad id\nInjected: yes"))
		got := w.Header().Get(middleware.RequestIDHeader)
		assert.NotContains(t, got, " ")
		assert.Len(t, got, 16)
	})
}

func TestRecovery(t *testing.T) {
	engine := newEngine()
	engine.GET("/boom", func(*gin.Context) { panic("nil reservation") })

	w := httptest.PerformRequest(t, engine, http.MethodGet, "/boom", nil, "")

	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, httperr.MsgInternal)
}

func TestErrorHandler(t *testing.T) {
	engine := newEngine()
	engine.GET("/public", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("lock timeout"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusConflict, "Reservation is busy", nil),
		})
	})
	engine.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("unexpected"))
	})

	w := httptest.PerformRequest(t, engine, http.MethodGet, "/public", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "Reservation is busy")

	w = httptest.PerformRequest(t, engine, http.MethodGet, "/private", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, httperr.MsgInternal)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins:     []string{"https://trip.example.com"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	preflight := func(engine *gin.Engine, origin string) *nethttptest.ResponseRecorder {
		return httptest.PerformRequest(t, engine, http.MethodOptions, "/api/reservations", nil, "",
			httptest.WithHeader("Origin", origin),
			httptest.WithHeader("Access-Control-Request-Method", http.MethodPost))
	}

	t.Run("listed origin", func(t *testing.T) {
		engine := gin.New()
		engine.Use(middleware.NewCORSMiddleware(cfg, discardLogger()))

		w := preflight(engine, "https://trip.example.com")
		assert.Equal(t, "https://trip.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		open := cfg
		open.AllowOrigins = []string{"*"}
		engine := gin.New()
		engine.Use(middleware.NewCORSMiddleware(open, discardLogger()))
		engine.GET("/api/reservations", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.PerformRequest(t, engine, http.MethodGet, "/api/reservations", nil, "",
			httptest.WithHeader("Origin", "https://elsewhere.example"))

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
		exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
		assert.Contains(t, exposed, strings.ToLower(middleware.RequestIDHeader))
	})
}
