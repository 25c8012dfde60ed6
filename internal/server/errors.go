package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgehrsitz/takehome/internal/domain"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrInvalidRequest marks a body that could not be decoded
var ErrInvalidRequest = errors.New("invalid_request")

func invalidRequestError(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
}

// ErrorHandlingMiddleware renders the last handler error as JSON
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

// AbortWithError records err for ErrorHandlingMiddleware and stops the chain
func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "internal server error"}
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{Type: "invalid_request", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidIncome):
		return http.StatusBadRequest, errorPayload{Type: "invalid_income", Message: err.Error()}
	case errors.Is(err, domain.ErrShapeMismatch):
		return http.StatusBadRequest, errorPayload{Type: "shape_mismatch", Message: err.Error()}
	case errors.Is(err, domain.ErrAmountExceedsTable):
		return http.StatusUnprocessableEntity, errorPayload{Type: "amount_exceeds_table", Message: err.Error()}
	case errors.Is(err, domain.ErrTableUnavailable):
		return http.StatusNotFound, errorPayload{Type: "table_unavailable", Message: err.Error()}
	default:
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "internal server error"}
	}
}

// errorType labels err for metrics
func errorType(err error) string {
	_, payload := mapError(err)
	return payload.Type
}
