package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gambling/internal/server/http/dto"
)

// Recovery converts panics into a 500 problem body.
// The panic value is only exposed to clients when development is set.
func Recovery(logger *slog.Logger, development bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			slog.String("path", c.Request.URL.Path),
			slog.String("request_id", c.GetString(RequestIDContextKey)),
			slog.Any("panic", recovered),
		)

		problem := dto.Problem{
			Type:   "https://tools.ietf.org/html/rfc9110#section-15.6.1",
			Title:  "An error occurred while processing your request.",
			Status: http.StatusInternalServerError,
		}
		if development {
			problem.Detail = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, problem)
	})
}
