package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/models"
	"inventory-backend/internal/repositories"
	"inventory-backend/internal/repositories/repository_mocks"
	"inventory-backend/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	userRepo         *repository_mocks.MockUserRepositoryInterface
	refreshTokenRepo *repository_mocks.MockRefreshTokenRepositoryInterface
	passwordService  *service_mocks.MockPasswordServiceInterface
	tokenService     *service_mocks.MockTokenServiceInterface
	metrics          *service_mocks.MockMetricsRecorderInterface
	authService      AuthServiceInterface
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.refreshTokenRepo = repository_mocks.NewMockRefreshTokenRepositoryInterface(s.ctrl)
	s.passwordService = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.tokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.authService = NewAuthService(s.userRepo, s.refreshTokenRepo, s.passwordService, s.tokenService, s.metrics, slog.Default())
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) expectTokenPair(user *models.User) {
	s.tokenService.EXPECT().GenerateAccessToken(gomock.Any()).
		Return("access-token", time.Now().Add(time.Hour), nil).Times(1)
	s.tokenService.EXPECT().GenerateRefreshToken(user.ID).
		Return("refresh-token", time.Now().Add(7*24*time.Hour), nil).Times(1)
	s.refreshTokenRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
}

func (s *AuthServiceTestSuite) TestRegister_SuccessfulRegistration() {
	req := &dto.RegisterRequest{
		Email:     gofakeit.Email(),
		Password:  "SecurePass123",
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.passwordService.EXPECT().HashPassword(req.Password).Return("hashed_password", nil).Times(1)
	s.userRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	user, err := s.authService.Register(req, "192.168.1.1", "Mozilla/5.0")

	s.NoError(err)
	s.NotNil(user)
	s.Equal(req.Email, user.Email)
	s.Equal(req.FirstName, user.FirstName)
	s.Equal(req.LastName, user.LastName)
	s.Equal(models.RoleStaff, user.Role)
	s.Equal("hashed_password", user.PasswordHash)
	s.NotEqual(req.Password, user.PasswordHash)
}

func (s *AuthServiceTestSuite) TestRegister_UserAlreadyExists() {
	req := &dto.RegisterRequest{
		Email:     "existing@example.com",
		Password:  "SecurePass123",
		FirstName: "Jane",
		LastName:  "Smith",
	}

	existingUser := &models.User{Email: req.Email}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(existingUser, nil).Times(1)

	user, err := s.authService.Register(req, "192.168.1.1", "Mozilla/5.0")
	s.Equal(ErrUserAlreadyExists, err)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestRegister_WeakPassword() {
	req := &dto.RegisterRequest{
		Email:     "weak@example.com",
		Password:  "123",
		FirstName: "Weak",
		LastName:  "User",
	}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.passwordService.EXPECT().HashPassword(req.Password).
		Return("", errors.New("password must be at least 8 characters")).Times(1)

	user, err := s.authService.Register(req, "192.168.1.1", "Mozilla/5.0")
	s.Error(err)
	s.Contains(err.Error(), "password must be at least 8 characters")
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		PasswordHash: "hashed_password",
		Role:         models.RoleStaff,
		IsActive:     true,
	}

	req := &dto.LoginRequest{Email: user.Email, Password: "SecurePass123"}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(user, nil).Times(1)
	s.passwordService.EXPECT().ComparePassword(req.Password, user.PasswordHash).Return(true).Times(1)
	s.userRepo.EXPECT().UpdateFailedLoginAttempts(user).Return(nil).Times(1)
	s.expectTokenPair(user)

	tokens, err := s.authService.Login(req, "192.168.1.1", "Mozilla/5.0")

	s.NoError(err)
	s.Equal("access-token", tokens.AccessToken)
	s.Equal("refresh-token", tokens.RefreshToken)
	s.Equal("Bearer", tokens.TokenType)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownUser() {
	req := &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound).Times(1)

	tokens, err := s.authService.Login(req, "192.168.1.1", "Mozilla/5.0")
	s.Equal(ErrInvalidCredentials, err)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPasswordIncrementsAttempts() {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		PasswordHash: "hashed_password",
		Role:         models.RoleStaff,
		IsActive:     true,
	}

	req := &dto.LoginRequest{Email: user.Email, Password: "wrong"}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(user, nil).Times(1)
	s.passwordService.EXPECT().ComparePassword(req.Password, user.PasswordHash).Return(false).Times(1)
	s.userRepo.EXPECT().UpdateFailedLoginAttempts(user).Return(nil).Times(1)

	tokens, err := s.authService.Login(req, "192.168.1.1", "Mozilla/5.0")
	s.Equal(ErrInvalidCredentials, err)
	s.Nil(tokens)
	s.Equal(1, user.FailedLoginAttempts)
}

func (s *AuthServiceTestSuite) TestLogin_LockoutAfterRepeatedFailures() {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		PasswordHash: "hashed_password",
		Role:         models.RoleStaff,
		IsActive:     true,
	}

	req := &dto.LoginRequest{Email: user.Email, Password: "wrong"}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(user, nil).Times(models.MaxFailedLoginAttempts)
	s.passwordService.EXPECT().ComparePassword(req.Password, user.PasswordHash).
		Return(false).Times(models.MaxFailedLoginAttempts)
	s.userRepo.EXPECT().UpdateFailedLoginAttempts(user).Return(nil).Times(models.MaxFailedLoginAttempts)

	for i := 0; i < models.MaxFailedLoginAttempts; i++ {
		_, err := s.authService.Login(req, "192.168.1.1", "Mozilla/5.0")
		s.Equal(ErrInvalidCredentials, err)
	}

	s.True(user.IsLocked())

	// The next attempt is rejected before the password is even checked
	s.userRepo.EXPECT().GetByEmail(req.Email).Return(user, nil).Times(1)
	_, err := s.authService.Login(req, "192.168.1.1", "Mozilla/5.0")
	s.Equal(ErrAccountLocked, err)
}

func (s *AuthServiceTestSuite) TestLogin_InactiveUser() {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "gone@example.com",
		PasswordHash: "hashed_password",
		Role:         models.RoleStaff,
		IsActive:     false,
	}

	req := &dto.LoginRequest{Email: user.Email, Password: "SecurePass123"}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(user, nil).Times(1)

	tokens, err := s.authService.Login(req, "192.168.1.1", "Mozilla/5.0")
	s.Equal(ErrInvalidCredentials, err)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_RotatesOldToken() {
	user := &models.User{
		ID:       uuid.New(),
		Email:    "staff@example.com",
		Role:     models.RoleStaff,
		IsActive: true,
	}

	refreshToken := "valid-refresh-token"
	claims := &models.CustomClaims{UserID: user.ID.String(), TokenType: TokenTypeRefresh}
	storedToken := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	s.tokenService.EXPECT().ValidateRefreshToken(refreshToken).Return(claims, nil).Times(1)
	s.refreshTokenRepo.EXPECT().GetByTokenHash(hashToken(refreshToken)).Return(storedToken, nil).Times(1)
	s.userRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
	s.refreshTokenRepo.EXPECT().Update(storedToken).Return(nil).Times(1)
	s.expectTokenPair(user)

	tokens, err := s.authService.RefreshTokens(refreshToken, "192.168.1.1", "Mozilla/5.0")

	s.NoError(err)
	s.NotNil(tokens)
	s.True(storedToken.IsRevoked(), "old refresh token must be revoked on rotation")
}

func (s *AuthServiceTestSuite) TestRefreshTokens_InvalidToken() {
	s.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, ErrInvalidToken).Times(1)

	tokens, err := s.authService.RefreshTokens("garbage", "192.168.1.1", "Mozilla/5.0")
	s.Equal(ErrInvalidRefreshToken, err)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_RevokedToken() {
	userID := uuid.New()
	refreshToken := "revoked-refresh-token"
	claims := &models.CustomClaims{UserID: userID.String(), TokenType: TokenTypeRefresh}

	storedToken := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	storedToken.Revoke()

	s.tokenService.EXPECT().ValidateRefreshToken(refreshToken).Return(claims, nil).Times(1)
	s.refreshTokenRepo.EXPECT().GetByTokenHash(hashToken(refreshToken)).Return(storedToken, nil).Times(1)

	tokens, err := s.authService.RefreshTokens(refreshToken, "192.168.1.1", "Mozilla/5.0")
	s.Equal(ErrInvalidRefreshToken, err)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_UnknownToken() {
	userID := uuid.New()
	refreshToken := "unknown-refresh-token"
	claims := &models.CustomClaims{UserID: userID.String(), TokenType: TokenTypeRefresh}

	s.tokenService.EXPECT().ValidateRefreshToken(refreshToken).Return(claims, nil).Times(1)
	s.refreshTokenRepo.EXPECT().GetByTokenHash(hashToken(refreshToken)).
		Return(nil, repositories.ErrRefreshTokenNotFound).Times(1)

	tokens, err := s.authService.RefreshTokens(refreshToken, "192.168.1.1", "Mozilla/5.0")
	s.Equal(ErrInvalidRefreshToken, err)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestLogout_RevokesRefreshTokens() {
	userID := uuid.New()

	s.refreshTokenRepo.EXPECT().RevokeAllForUser(userID).Return(nil).Times(1)

	err := s.authService.Logout(userID, "192.168.1.1", "Mozilla/5.0")
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestLogout_NilUserID() {
	err := s.authService.Logout(uuid.Nil, "192.168.1.1", "Mozilla/5.0")
	s.Error(err)
}

func (s *AuthServiceTestSuite) TestGetProfile() {
	user := &models.User{ID: uuid.New(), Email: "staff@example.com"}

	s.userRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)

	found, err := s.authService.GetProfile(user.ID)
	s.NoError(err)
	s.Equal(user, found)
}
