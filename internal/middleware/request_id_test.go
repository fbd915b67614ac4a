package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// serve runs a single request through the middleware and returns the
// trace ID the handler observed plus the recorder.
func (s *RequestIDTestSuite) serve(incomingHeader string) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incomingHeader != "" {
		req.Header.Set(TraceIDHeader, incomingHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	return seen, rec
}

func (s *RequestIDTestSuite) TestGeneratesTraceID() {
	seen, rec := s.serve("")

	s.NotEmpty(seen)
	s.Equal(seen, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestGeneratedIDIsUUID() {
	seen, _ := s.serve("")

	s.Regexp(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, seen)
}

func (s *RequestIDTestSuite) TestHonorsUpstreamTraceID() {
	seen, rec := s.serve("upstream-trace-id-12345")

	s.Equal("upstream-trace-id-12345", seen)
	s.Equal("upstream-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestEachRequestGetsDistinctID() {
	first, _ := s.serve("")
	second, _ := s.serve("")

	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceIDWithoutMiddleware() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Empty(GetTraceID(c))
}
