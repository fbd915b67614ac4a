package repositories

import (
	"time"

	"inventory-backend/internal/models"

	"github.com/google/uuid"
)

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll(offset, limit int) ([]models.Category, int64, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
	CountProducts(categoryID uuid.UUID) (int64, error)
}

// ProductRepositoryInterface defines the contract for product repository operations
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetByID(id uuid.UUID) (*models.Product, error)
	GetBySKU(sku string) (*models.Product, error)
	GetAll(categoryID uuid.UUID, offset, limit int) ([]models.Product, int64, error)
	GetLowStock(threshold int) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uuid.UUID) error
	CountTransactions(productID uuid.UUID) (int64, error)
}

// SupplierRepositoryInterface defines the contract for supplier repository operations
type SupplierRepositoryInterface interface {
	Create(supplier *models.Supplier) error
	GetByID(id uuid.UUID) (*models.Supplier, error)
	GetByName(name string) (*models.Supplier, error)
	GetAll(offset, limit int) ([]models.Supplier, int64, error)
	Update(supplier *models.Supplier) error
	Delete(id uuid.UUID) error
	CountTransactions(supplierID uuid.UUID) (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateWithStockAdjustment(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByReference(reference string) (*models.Transaction, error)
	GetWithFilters(predicate TransactionPredicate, offset, limit int) ([]models.Transaction, int64, error)
	GetRecentByProductID(productID uuid.UUID, limit int) ([]models.Transaction, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	UnlockAccount(userID uuid.UUID) error
	Delete(userID uuid.UUID) error
	ListUsers(offset, limit int) ([]*models.User, int64, error)
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	GetActiveByUserID(userID uuid.UUID) ([]*models.RefreshToken, error)
	Update(token *models.RefreshToken) error
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}
