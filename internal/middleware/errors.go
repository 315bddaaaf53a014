package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/homeloan/internal/domain/dto"
	"github.com/guttosm/homeloan/internal/logger"
)

// ErrorHandler logs errors attached with c.Error and turns them into a JSON
// 500 response when the handler chain finished without writing a body.
// Errors behind a 4xx response are logged at warn level.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	last := c.Errors.Last()
	rid, _ := c.Get(RequestIDKey)
	ev := logger.L().Error()
	if c.Writer.Written() && c.Writer.Status() < http.StatusInternalServerError {
		ev = logger.L().Warn()
	}
	ev.Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Err(last.Err).
		Msg("request failed")

	if c.Writer.Written() {
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", nil))
}

// AbortWithError stops the chain and writes status with a dto.ErrorResponse
// built from message and err. err is also recorded on the context so that
// ErrorHandler and the request logger see it.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
