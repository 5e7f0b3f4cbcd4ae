package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptochart/internal/domain/dto"
	"github.com/guttosm/cryptochart/internal/domain/errs"
)

// AbortWithError stops the chain and writes a dto.ErrorResponse.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

// StatusFor maps domain errors to HTTP status codes.
//
//   - errs.ErrNotFound                       → 404
//   - errs.ErrInvalidRange                   → 400
//   - errs.ErrTransport, errs.ErrMalformedData → 502
//   - anything else                          → 500
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrTransport), errors.Is(err, errs.ErrMalformedData):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler turns errors attached with c.Error into a JSON response
// when the handler did not write one itself. The last error wins.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err
	status := StatusFor(err)
	c.JSON(status, dto.NewErrorResponse(http.StatusText(status), err))
}
