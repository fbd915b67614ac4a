package services

import (
	"time"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/models"

	"github.com/google/uuid"
)

// TokenServiceInterface defines the contract for JWT operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines the contract for password operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuthServiceInterface defines authentication business operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(userID uuid.UUID, ipAddress, userAgent string) error
	GetProfile(userID uuid.UUID) (*models.User, error)
}

// CategoryServiceInterface defines category business operations
type CategoryServiceInterface interface {
	Create(req *dto.CreateCategoryRequest) (*models.Category, error)
	GetByID(id uuid.UUID) (*models.Category, error)
	GetAll(offset, limit int) ([]models.Category, int64, error)
	Update(id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(id uuid.UUID) error
}

// ProductServiceInterface defines product business operations
type ProductServiceInterface interface {
	Create(req *dto.CreateProductRequest) (*models.Product, error)
	GetByID(id uuid.UUID) (*models.Product, error)
	GetAll(categoryID uuid.UUID, offset, limit int) ([]models.Product, int64, error)
	GetLowStock(threshold int) ([]models.Product, error)
	Update(id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error)
	Delete(id uuid.UUID) error
}

// SupplierServiceInterface defines supplier business operations
type SupplierServiceInterface interface {
	Create(req *dto.CreateSupplierRequest) (*models.Supplier, error)
	GetByID(id uuid.UUID) (*models.Supplier, error)
	GetAll(offset, limit int) ([]models.Supplier, int64, error)
	Update(id uuid.UUID, req *dto.UpdateSupplierRequest) (*models.Supplier, error)
	Delete(id uuid.UUID) error
}

// TransactionServiceInterface defines stock movement business operations
type TransactionServiceInterface interface {
	Create(req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetByID(id uuid.UUID) (*models.Transaction, error)
	List(filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// UserServiceInterface defines user administration operations
type UserServiceInterface interface {
	ListUsers(offset, limit int) ([]*models.User, int64, error)
}

// MetricsRecorderInterface abstracts metrics collection so services don't
// depend on a concrete metrics backend
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
