package services

import (
	"errors"
	"fmt"
	"log/slog"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/models"
	"inventory-backend/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrSupplierInUse = errors.New("supplier still has transactions recorded against it")
)

// SupplierService handles supplier business logic
type SupplierService struct {
	supplierRepo repositories.SupplierRepositoryInterface
	logger       *slog.Logger
}

// NewSupplierService creates a new supplier service
func NewSupplierService(
	supplierRepo repositories.SupplierRepositoryInterface,
	logger *slog.Logger,
) SupplierServiceInterface {
	return &SupplierService{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create creates a new supplier
func (s *SupplierService) Create(req *dto.CreateSupplierRequest) (*models.Supplier, error) {
	supplier := dto.NewSupplierFromCreateRequest(req)

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}

	s.logger.Info("supplier created",
		"supplier_id", supplier.ID,
		"name", supplier.Name)

	return supplier, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(id uuid.UUID) (*models.Supplier, error) {
	return s.supplierRepo.GetByID(id)
}

// GetAll lists suppliers with pagination
func (s *SupplierService) GetAll(offset, limit int) ([]models.Supplier, int64, error) {
	return s.supplierRepo.GetAll(offset, limit)
}

// Update applies the updatable fields to an existing supplier
func (s *SupplierService) Update(id uuid.UUID, req *dto.UpdateSupplierRequest) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	dto.ApplySupplierUpdate(supplier, req)

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}

	s.logger.Info("supplier updated",
		"supplier_id", supplier.ID,
		"name", supplier.Name)

	return supplier, nil
}

// Delete removes a supplier. Suppliers referenced by recorded transactions
// cannot be deleted.
func (s *SupplierService) Delete(id uuid.UUID) error {
	transactionCount, err := s.supplierRepo.CountTransactions(id)
	if err != nil {
		return fmt.Errorf("failed to count transactions: %w", err)
	}

	if transactionCount > 0 {
		return ErrSupplierInUse
	}

	if err := s.supplierRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("supplier deleted", "supplier_id", id)

	return nil
}
