package handlers

import (
	"net/http"

	"inventory-backend/internal/errors"

	"github.com/labstack/echo/v4"
)

// Every handler reports failures through SendError or SendSystemError so
// clients always receive the same envelope with a machine-readable code
// and the request's trace ID. SendError is for expected outcomes with a
// catalog code (validation failures, missing products, insufficient
// stock); SendSystemError is for repository and other internal failures
// whose details must not leak to the client. Handlers never call
// echo.NewHTTPError or write error JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse is the envelope for successful API responses
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a catalog error response with the trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError hides an internal error behind the generic SYSTEM_001
// body while keeping the original error in the server log
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
