package services

import (
	"fmt"
	"log/slog"
	"time"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/models"
	"inventory-backend/internal/repositories"

	"github.com/google/uuid"
)

// TransactionService handles stock movement business logic
type TransactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	productRepo     repositories.ProductRepositoryInterface
	supplierRepo    repositories.SupplierRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	productRepo repositories.ProductRepositoryInterface,
	supplierRepo repositories.SupplierRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &TransactionService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		supplierRepo:    supplierRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Create records a stock movement and adjusts the product's stock level
// atomically. PURCHASE and RETURN increase stock, SALE decreases it; a SALE
// exceeding the available stock is rejected and nothing is written.
func (s *TransactionService) Create(req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	transaction, err := dto.NewTransactionFromCreateRequest(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}

	if _, err := s.supplierRepo.GetByID(transaction.SupplierID); err != nil {
		return nil, err
	}

	start := time.Now()
	if err := s.transactionRepo.CreateWithStockAdjustment(transaction); err != nil {
		s.metrics.IncrementCounter("transaction_recorded", map[string]string{
			"type":   transaction.Type,
			"status": "failed",
		})
		return nil, err
	}
	s.metrics.RecordProcessingTime("transaction_recording", time.Since(start))
	s.metrics.IncrementCounter("transaction_recorded", map[string]string{
		"type":   transaction.Type,
		"status": "success",
	})

	s.logger.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"reference", transaction.ReferenceNumber,
		"type", transaction.Type,
		"product_id", transaction.ProductID,
		"quantity", transaction.Quantity)

	s.recordStockLevel(transaction.ProductID)

	// Reload to pick up the preloaded product and supplier associations
	return s.transactionRepo.GetByID(transaction.ID)
}

// GetByID retrieves a transaction with its associations preloaded
func (s *TransactionService) GetByID(id uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// List returns transactions matching the filter criteria, newest first.
// A free-text term and a month/year period are alternative modes; when both
// are supplied the free-text term wins. An out-of-range month is an error,
// never a silent empty result.
func (s *TransactionService) List(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	predicate, err := repositories.BuildTransactionPredicate(filters)
	if err != nil {
		return nil, 0, err
	}

	return s.transactionRepo.GetWithFilters(predicate, filters.Offset, filters.Limit)
}

func (s *TransactionService) recordStockLevel(productID uuid.UUID) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		s.logger.Warn("failed to load product for stock gauge",
			"error", err,
			"product_id", productID)
		return
	}

	s.metrics.RecordGauge("product_stock_level", float64(product.Stock), map[string]string{
		"sku": product.SKU,
	})
}
