package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-backend/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

// recoverFrom runs a handler that panics with the given value behind the
// middleware and returns the recorded response.
func (s *PanicRecoveryTestSuite) recoverFrom(panicValue interface{}, traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(panicValue)
	})

	s.NotPanics(func() {
		_ = handler(c)
	})

	return rec
}

func (s *PanicRecoveryTestSuite) TestConvertsPanicToSystemError() {
	rec := s.recoverFrom("stock adjustment exploded", "test-trace-id")

	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestMissingTraceIDFallsBackToUnknown() {
	rec := s.recoverFrom("boom", "")

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("unknown", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestNormalFlowUntouched() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestRecoversFromAnyPanicValue() {
	values := []struct {
		name      string
		panicWith interface{}
	}{
		{"string", "plain message"},
		{"int", 42},
		{"struct", struct{ msg string }{"error"}},
		{"nil", nil},
	}

	for _, tc := range values {
		s.Run(tc.name, func() {
			rec := s.recoverFrom(tc.panicWith, "test-trace-id")
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}
