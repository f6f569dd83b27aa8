package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-admin/internal/dto"
	apperrors "restaurant-admin/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error, traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/Restaurant", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	CustomHTTPErrorHandler(err, c)
	return rec
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_GenericErrorHidesDetail() {
	rec := s.handle(errors.New("pq: relation \"secret_table\" does not exist"), "test-trace-id")

	s.Equal(http.StatusInternalServerError, rec.Code)
	response := decodeFailure(s.T(), rec)
	s.Equal(dto.StatusFailure, response.Status)
	s.Equal("SYSTEM_001", response.Code)
	s.Equal("An unexpected error occurred", response.Message)
	s.Equal("test-trace-id", response.TraceID)
	s.Nil(response.Data)
	s.NotContains(rec.Body.String(), "secret_table")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_CodedError() {
	err := apperrors.New(apperrors.MalformedPayload, apperrors.WithDetails("CompanyName: is required"))

	rec := s.handle(fmt.Errorf("bind: %w", err), "t")

	s.Equal(http.StatusBadRequest, rec.Code)
	response := decodeFailure(s.T(), rec)
	s.Equal("PAYLOAD_001", response.Code)
	s.Equal([]string{"CompanyName: is required"}, response.Details)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_UnhandledFaultDropsCause() {
	err := apperrors.New(apperrors.UnhandledFault, apperrors.WithMessage("nil map write in handler"))

	rec := s.handle(err, "t")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("An unexpected error occurred", decodeFailure(s.T(), rec).Message)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_EchoHTTPError() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "PAYLOAD_001"},
		{http.StatusUnauthorized, "AUTH_002"},
		{http.StatusForbidden, "AUTH_006"},
		{http.StatusNotFound, "REQUEST_001"},
		{http.StatusMethodNotAllowed, "REQUEST_002"},
		{http.StatusRequestEntityTooLarge, "REQUEST_003"},
		{http.StatusTooManyRequests, "SYSTEM_004"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			rec := s.handle(echo.NewHTTPError(tc.status), "test-trace-id")

			s.Equal(tc.status, rec.Code)
			response := decodeFailure(s.T(), rec)
			s.Equal(tc.expectedCode, response.Code)
			s.Equal("test-trace-id", response.TraceID)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_EchoMessageKept() {
	rec := s.handle(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), "t")

	s.Equal("Resource not found", decodeFailure(s.T(), rec).Message)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_NoTraceID() {
	rec := s.handle(errors.New("test error"), "")

	s.Equal("unknown", decodeFailure(s.T(), rec).TraceID)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_CommittedResponse() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
	s.NotContains(rec.Body.String(), "SYSTEM_001")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_HeadRequest() {
	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound), c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Zero(rec.Body.Len())
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_JSONFormat() {
	rec := s.handle(errors.New("test error"), "t")

	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}
