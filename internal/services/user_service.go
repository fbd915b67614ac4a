package services

import (
	"log/slog"

	"inventory-backend/internal/models"
	"inventory-backend/internal/repositories"
)

// UserService handles user administration operations
type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers lists users with pagination, for the admin user listing
func (s *UserService) ListUsers(offset, limit int) ([]*models.User, int64, error) {
	return s.userRepo.ListUsers(offset, limit)
}
