package handlers

import (
	"net/http"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/errors"
	"inventory-backend/internal/repositories"
	"inventory-backend/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles stock movement endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Create records a stock movement and adjusts the product stock atomically
// @Summary Record a transaction
// @Description Record a purchase, sale, or return. The total price is computed server-side and the product stock is adjusted in the same database transaction.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} SuccessResponse{data=dto.TransactionResponse} "Transaction recorded"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or TRANSACTION_002"
// @Failure 404 {object} errors.ErrorResponse "Product or supplier not found - PRODUCT_001 or SUPPLIER_001"
// @Failure 422 {object} errors.ErrorResponse "Insufficient stock - TRANSACTION_003"
// @Router /transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	var req dto.CreateTransactionRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(&req)
	if err != nil {
		switch err {
		case repositories.ErrProductNotFound:
			return SendError(c, errors.ProductNotFound)
		case repositories.ErrSupplierNotFound:
			return SendError(c, errors.SupplierNotFound)
		case repositories.ErrInsufficientStock:
			return SendError(c, errors.TransactionInsufficientStock)
		default:
			if isInvalidPrice(err) {
				return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid unit price"))
			}
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.ToTransactionResponse(transaction),
		Message: "Transaction recorded successfully",
	})
}

// GetByID returns a single transaction with its product and supplier
// @Summary Get a transaction
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} SuccessResponse{data=dto.TransactionResponse} "Transaction"
// @Failure 400 {object} errors.ErrorResponse "Invalid ID - TRANSACTION_005"
// @Failure 404 {object} errors.ErrorResponse "Transaction not found - TRANSACTION_001"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	transaction, err := h.transactionService.GetByID(id)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToTransactionResponse(transaction),
	})
}

// List returns a page of transactions. Callers can narrow the listing with
// a free-text search over product names, supplier names and descriptions,
// or with a month/year period. When both are given the free-text search
// wins.
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param search query string false "Free-text search term"
// @Param month query int false "Calendar month (1-12), combined with year"
// @Param year query int false "Calendar year, combined with month"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListTransactionsResponse "Transactions"
// @Failure 400 {object} errors.ErrorResponse "Month out of range - VALIDATION_004"
// @Router /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	var params dto.TransactionFilterParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid filter parameters"))
	}
	params.Normalize()

	transactions, total, err := h.transactionService.List(params.ToFilters())
	if err != nil {
		if err == repositories.ErrInvalidMonth {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("Month must be between 1 and 12"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		Pagination:   dto.NewPaginationMeta(params.PaginationParams, total),
	})
}
