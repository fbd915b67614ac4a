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
	ErrProductInUse  = errors.New("product still has transactions recorded against it")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// ProductService handles product business logic
type ProductService struct {
	productRepo  repositories.ProductRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repositories.ProductRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) ProductServiceInterface {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create creates a new product in an existing category
func (s *ProductService) Create(req *dto.CreateProductRequest) (*models.Product, error) {
	product, err := dto.NewProductFromCreateRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}

	if product.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	category, err := s.categoryRepo.GetByID(product.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	product.Category = *category

	s.logger.Info("product created",
		"product_id", product.ID,
		"sku", product.SKU,
		"name", product.Name)

	return product, nil
}

// GetByID retrieves a product with its category preloaded
func (s *ProductService) GetByID(id uuid.UUID) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// GetAll lists products with pagination, optionally restricted to one
// category (uuid.Nil means all categories)
func (s *ProductService) GetAll(categoryID uuid.UUID, offset, limit int) ([]models.Product, int64, error) {
	return s.productRepo.GetAll(categoryID, offset, limit)
}

// GetLowStock lists products whose stock is at or below the threshold
func (s *ProductService) GetLowStock(threshold int) ([]models.Product, error) {
	return s.productRepo.GetLowStock(threshold)
}

// Update applies the updatable fields to an existing product. Stock never
// changes here; it only moves through transactions.
func (s *ProductService) Update(id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := dto.ApplyProductUpdate(product, req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}

	if product.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	category, err := s.categoryRepo.GetByID(product.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	product.Category = *category

	s.logger.Info("product updated",
		"product_id", product.ID,
		"sku", product.SKU)

	return product, nil
}

// Delete removes a product. Products referenced by recorded transactions
// cannot be deleted; the movement history is append-only.
func (s *ProductService) Delete(id uuid.UUID) error {
	transactionCount, err := s.productRepo.CountTransactions(id)
	if err != nil {
		return fmt.Errorf("failed to count transactions: %w", err)
	}

	if transactionCount > 0 {
		return ErrProductInUse
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("product deleted", "product_id", id)

	return nil
}
