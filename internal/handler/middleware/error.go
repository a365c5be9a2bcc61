package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"trip-booking/internal/handler/httperr"
	"trip-booking/internal/pkg/errs"
)

const maxStackLines = 12

// ErrorHandler renders the last public error for handlers that recorded one
// without writing a body. Private errors become a logged 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if last := c.Errors.Last(); last != nil {
			logger.Error("unhandled request error",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, maxStackLines))
			c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, httperr.MsgInternal, nil))
		}
	}
}

// Recovery turns a panic into the 500 envelope. A panic inside the webhook
// therefore still asks the gateway to retry.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c))
		httperr.Abort(c, http.StatusInternalServerError, httperr.MsgInternal)
	})
}
