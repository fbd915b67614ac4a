package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/models"
	"inventory-backend/internal/services"
	"inventory-backend/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// AuthHandlerTestSuite is the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAuthService *service_mocks.MockAuthServiceInterface
	handler         *AuthHandler
	echo            *echo.Echo
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAuthService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.mockAuthService)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *AuthHandlerTestSuite) TestRegister_Success() {
	email := gofakeit.Email()
	body := `{"email":"` + email + `","password":"Str0ngPass!","firstName":"Ada","lastName":"Lovelace"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/register", body)

	user := &models.User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.RoleStaff,
		IsActive:  true,
	}

	s.mockAuthService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(user, nil).Times(1)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Contains(rec.Body.String(), email)
	s.NotContains(rec.Body.String(), "passwordHash")
}

func (s *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	body := `{"email":"taken@example.com","password":"Str0ngPass!","firstName":"Ada","lastName":"Lovelace"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/register", body)

	s.mockAuthService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrUserAlreadyExists).Times(1)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "USER_002")
}

func (s *AuthHandlerTestSuite) TestRegister_InvalidEmail() {
	body := `{"email":"not-an-email","password":"Str0ngPass!","firstName":"Ada","lastName":"Lovelace"}`
	c, _ := s.newJSONContext(http.MethodPost, "/api/v1/auth/register", body)

	// Validation errors bubble up to the central error handler
	s.Error(s.handler.Register(c))
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	body := `{"email":"staff@example.com","password":"Str0ngPass!"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/login", body)

	tokens := &dto.TokenResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	s.mockAuthService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tokens, nil).Times(1)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "access-token")
	s.Contains(rec.Body.String(), "refresh-token")
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	body := `{"email":"staff@example.com","password":"wrong"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/login", body)

	s.mockAuthService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidCredentials).Times(1)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthHandlerTestSuite) TestLogin_AccountLocked() {
	body := `{"email":"locked@example.com","password":"Str0ngPass!"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/login", body)

	s.mockAuthService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrAccountLocked).Times(1)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_006")
}

func (s *AuthHandlerTestSuite) TestRefreshToken_Success() {
	body := `{"refreshToken":"some-refresh-token"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/refresh", body)

	tokens := &dto.TokenResponse{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	s.mockAuthService.EXPECT().
		RefreshTokens("some-refresh-token", gomock.Any(), gomock.Any()).
		Return(tokens, nil).Times(1)

	s.NoError(s.handler.RefreshToken(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "new-access-token")
}

func (s *AuthHandlerTestSuite) TestRefreshToken_Invalid() {
	body := `{"refreshToken":"stale-token"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/refresh", body)

	s.mockAuthService.EXPECT().
		RefreshTokens("stale-token", gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidRefreshToken).Times(1)

	s.NoError(s.handler.RefreshToken(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthHandlerTestSuite) TestLogout_Success() {
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/logout", "")
	userID := uuid.New()
	c.Set(models.IdentityContextKey, models.RequestIdentity{
		Subject: userID.String(),
		Email:   "staff@example.com",
		Role:    models.RoleStaff,
	})

	s.mockAuthService.EXPECT().
		Logout(userID, gomock.Any(), gomock.Any()).
		Return(nil).Times(1)

	s.NoError(s.handler.Logout(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Logout successful")
}

func (s *AuthHandlerTestSuite) TestLogout_ReportsSuccessEvenWhenRevocationFails() {
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/logout", "")
	userID := uuid.New()
	c.Set(models.IdentityContextKey, models.RequestIdentity{Subject: userID.String()})

	s.mockAuthService.EXPECT().
		Logout(userID, gomock.Any(), gomock.Any()).
		Return(errors.New("db down")).Times(1)

	s.NoError(s.handler.Logout(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthHandlerTestSuite) TestLogout_Anonymous() {
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/logout", "")

	s.NoError(s.handler.Logout(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthHandlerTestSuite) TestMe_Success() {
	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/auth/me", "")
	userID := uuid.New()
	c.Set(models.IdentityContextKey, models.RequestIdentity{
		Subject: userID.String(),
		Email:   "staff@example.com",
		Role:    models.RoleStaff,
	})

	user := &models.User{
		ID:        userID,
		Email:     "staff@example.com",
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Role:      models.RoleStaff,
		IsActive:  true,
	}

	s.mockAuthService.EXPECT().GetProfile(userID).Return(user, nil).Times(1)

	s.NoError(s.handler.Me(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "staff@example.com")
}

func (s *AuthHandlerTestSuite) TestMe_Anonymous() {
	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/auth/me", "")

	s.NoError(s.handler.Me(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
