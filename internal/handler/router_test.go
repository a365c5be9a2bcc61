//go:build unit

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMountSwagger(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	t.Run("debug mode serves the docs UI", func(t *testing.T) {
		gin.SetMode(gin.DebugMode)
		engine := gin.New()
		mountSwagger(engine)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "swagger-ui")
	})

	t.Run("release mode has no docs route", func(t *testing.T) {
		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()
		mountSwagger(engine)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
