package repositories

import (
	"crypto/sha256"
	"fmt"
	"testing"
	"time"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestRefreshTokenRepository(t *testing.T) {
	suite.Run(t, new(RefreshTokenRepositorySuite))
}

type RefreshTokenRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo RefreshTokenRepositoryInterface
}

func (s *RefreshTokenRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewRefreshTokenRepository(s.db.DB)
}

func (s *RefreshTokenRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// storeToken creates a token row for userID with the given plaintext and
// time-to-live, mirroring what AuthService persists on login.
func (s *RefreshTokenRepositorySuite) storeToken(userID uuid.UUID, plaintext string, ttl time.Duration) *models.RefreshToken {
	s.T().Helper()

	token := &models.RefreshToken{
		UserID:    userID,
		TokenHash: fmt.Sprintf("%x", sha256.Sum256([]byte(plaintext))),
		ExpiresAt: time.Now().Add(ttl),
	}
	s.Require().NoError(s.repo.Create(token))
	return token
}

func (s *RefreshTokenRepositorySuite) TestCreate_AssignsIDAndTimestamp() {
	token := s.storeToken(uuid.New(), "session.token", 7*24*time.Hour)

	s.NotEqual(uuid.Nil, token.ID)
	s.NotZero(token.CreatedAt)
}

func (s *RefreshTokenRepositorySuite) TestGetByTokenHash() {
	userID := uuid.New()
	token := s.storeToken(userID, "session.token", 7*24*time.Hour)

	found, err := s.repo.GetByTokenHash(token.TokenHash)
	s.NoError(err)
	s.Equal(token.ID, found.ID)
	s.Equal(userID, found.UserID)
	s.False(found.IsRevoked())

	_, err = s.repo.GetByTokenHash("unknown-hash")
	s.ErrorIs(err, ErrRefreshTokenNotFound)
}

func (s *RefreshTokenRepositorySuite) TestGetActiveByUserID_SkipsRevokedAndExpired() {
	userID := uuid.New()
	otherUserID := uuid.New()

	for i := 0; i < 3; i++ {
		s.storeToken(userID, fmt.Sprintf("session.%d", i), 7*24*time.Hour)
	}

	revoked := s.storeToken(userID, "revoked.session", 7*24*time.Hour)
	revoked.Revoke()
	s.Require().NoError(s.repo.Update(revoked))

	s.storeToken(userID, "expired.session", -time.Hour)
	s.storeToken(otherUserID, "other.session", 7*24*time.Hour)

	tokens, err := s.repo.GetActiveByUserID(userID)
	s.NoError(err)
	s.Len(tokens, 3)
	for _, token := range tokens {
		s.Equal(userID, token.UserID)
		s.True(token.IsValid())
	}

	tokens, err = s.repo.GetActiveByUserID(otherUserID)
	s.NoError(err)
	s.Len(tokens, 1)
}

func (s *RefreshTokenRepositorySuite) TestUpdate_PersistsRevocation() {
	token := s.storeToken(uuid.New(), "session.token", 7*24*time.Hour)

	token.Revoke()
	s.NoError(s.repo.Update(token))

	updated, err := s.repo.GetByTokenHash(token.TokenHash)
	s.NoError(err)
	s.True(updated.IsRevoked())
	s.NotNil(updated.RevokedAt)
}

func (s *RefreshTokenRepositorySuite) TestRevoke() {
	token := s.storeToken(uuid.New(), "session.token", 7*24*time.Hour)

	s.NoError(s.repo.Revoke(token.ID))

	revoked, err := s.repo.GetByTokenHash(token.TokenHash)
	s.NoError(err)
	s.True(revoked.IsRevoked())

	// Second revocation finds no live row
	s.ErrorIs(s.repo.Revoke(token.ID), ErrRefreshTokenNotFound)
	s.ErrorIs(s.repo.Revoke(uuid.New()), ErrRefreshTokenNotFound)
}

func (s *RefreshTokenRepositorySuite) TestRevokeAllForUser_LeavesOtherUsersAlone() {
	userID := uuid.New()
	otherUserID := uuid.New()

	var hashes []string
	for i := 0; i < 3; i++ {
		hashes = append(hashes, s.storeToken(userID, fmt.Sprintf("session.%d", i), 7*24*time.Hour).TokenHash)
	}
	otherHash := s.storeToken(otherUserID, "other.session", 7*24*time.Hour).TokenHash

	s.NoError(s.repo.RevokeAllForUser(userID))

	for _, hash := range hashes {
		token, err := s.repo.GetByTokenHash(hash)
		s.NoError(err)
		s.True(token.IsRevoked())
	}

	other, err := s.repo.GetByTokenHash(otherHash)
	s.NoError(err)
	s.False(other.IsRevoked())
}

func (s *RefreshTokenRepositorySuite) TestDeleteExpired() {
	userID := uuid.New()
	expiredHash := s.storeToken(userID, "expired.session", -24*time.Hour).TokenHash
	validHash := s.storeToken(userID, "valid.session", 7*24*time.Hour).TokenHash

	count, err := s.repo.DeleteExpired()
	s.NoError(err)
	s.Equal(int64(1), count)

	_, err = s.repo.GetByTokenHash(expiredHash)
	s.ErrorIs(err, ErrRefreshTokenNotFound)

	stillThere, err := s.repo.GetByTokenHash(validHash)
	s.NoError(err)
	s.Equal(validHash, stillThere.TokenHash)
}
