package repositories

import (
	"errors"
	"fmt"

	"inventory-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrSupplierAlreadyExists = errors.New("supplier already exists")
)

// supplierRepository implements SupplierRepository interface
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) SupplierRepositoryInterface {
	return &supplierRepository{
		db: db,
	}
}

// Create creates a new supplier
func (r *supplierRepository) Create(supplier *models.Supplier) error {
	if err := r.db.Create(supplier).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrSupplierAlreadyExists
		}
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// GetByID retrieves a supplier by ID
func (r *supplierRepository) GetByID(id uuid.UUID) (*models.Supplier, error) {
	supplier := &models.Supplier{ID: id}
	if err := r.db.First(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return supplier, nil
}

// GetByName retrieves a supplier by its unique name
func (r *supplierRepository) GetByName(name string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier by name: %w", err)
	}
	return &supplier, nil
}

// GetAll lists suppliers with pagination
func (r *supplierRepository) GetAll(offset, limit int) ([]models.Supplier, int64, error) {
	var suppliers []models.Supplier
	var total int64

	if err := r.db.Model(&models.Supplier{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&suppliers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}

	return suppliers, total, nil
}

// Update updates a supplier
func (r *supplierRepository) Update(supplier *models.Supplier) error {
	if err := r.db.Save(supplier).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrSupplierAlreadyExists
		}
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	return nil
}

// Delete removes a supplier
func (r *supplierRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Supplier{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// CountTransactions counts the stock movements recorded against a supplier
func (r *supplierRepository) CountTransactions(supplierID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("supplier_id = ?", supplierID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
