package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gambling/internal/server/http/dto"
	"github.com/polkiloo/gambling/internal/server/http/middleware"
)

const (
	problemTypeValidation   = "https://tools.ietf.org/html/rfc9110#section-15.5.1"
	problemTypePayment      = "https://tools.ietf.org/html/rfc9110#section-15.5.3"
	problemTypeInternal     = "https://tools.ietf.org/html/rfc9110#section-15.6.1"
	titleValidation         = "One or more validation errors occurred."
	titleMalformedBody      = "Request body is not valid JSON."
	titleInsufficientPoints = "Not enough points on the account!"
	titleInternal           = "An error occurred while processing your request."
)

// CurrentUserID extracts the resolved player identifier from context.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDContextKey)
}

func writeProblem(c *gin.Context, status int, problemType, title string) {
	c.AbortWithStatusJSON(status, dto.Problem{Type: problemType, Title: title, Status: status})
}

func writeValidationProblem(c *gin.Context, errs map[string][]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ValidationProblem{
		Problem: dto.Problem{Type: problemTypeValidation, Title: titleValidation, Status: http.StatusBadRequest},
		Errors:  errs,
	})
}
