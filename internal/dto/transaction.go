package dto

import (
	"time"

	"inventory-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilterParams contains the optional filter criteria accepted
// by the transaction list endpoint. Search and month/year are alternative
// modes; when both are present the free-text search wins.
type TransactionFilterParams struct {
	Search string `query:"search"`
	Month  int    `query:"month"`
	Year   int    `query:"year"`
	PaginationParams
}

// ToFilters converts the query parameters into the model-level filter set
func (p TransactionFilterParams) ToFilters() models.TransactionFilters {
	return models.TransactionFilters{
		Search: p.Search,
		Month:  p.Month,
		Year:   p.Year,
		Offset: p.Offset(),
		Limit:  p.Limit,
	}
}

// CreateTransactionRequest contains data for recording a stock movement
type CreateTransactionRequest struct {
	ProductID   string `json:"productId" validate:"required,uuid"`
	SupplierID  string `json:"supplierId" validate:"required,uuid"`
	Type        string `json:"type" validate:"required,transaction_type"`
	Quantity    int    `json:"quantity" validate:"required,positive_quantity"`
	UnitPrice   string `json:"unitPrice" validate:"required"`
	Description string `json:"description" validate:"max=2000"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName,omitempty"`
	SupplierID      string    `json:"supplierId"`
	SupplierName    string    `json:"supplierName,omitempty"`
	Type            string    `json:"type"`
	Quantity        int       `json:"quantity"`
	UnitPrice       string    `json:"unitPrice"`
	TotalPrice      string    `json:"totalPrice"`
	Description     string    `json:"description,omitempty"`
	ReferenceNumber string    `json:"referenceNumber"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListTransactionsResponse represents a page of transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationMeta        `json:"pagination"`
}

// ToTransactionResponse maps a transaction model to its API representation.
// Product and supplier names are included only when the associations were
// preloaded.
func ToTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              transaction.ID.String(),
		ProductID:       transaction.ProductID.String(),
		ProductName:     transaction.Product.Name,
		SupplierID:      transaction.SupplierID.String(),
		SupplierName:    transaction.Supplier.Name,
		Type:            transaction.Type,
		Quantity:        transaction.Quantity,
		UnitPrice:       transaction.UnitPrice.StringFixed(2),
		TotalPrice:      transaction.TotalPrice.StringFixed(2),
		Description:     transaction.Description,
		ReferenceNumber: transaction.ReferenceNumber,
		CreatedAt:       transaction.CreatedAt,
	}
}

// ToTransactionResponses maps a slice of transaction models
func ToTransactionResponses(transactions []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses
}

// NewTransactionFromCreateRequest maps a create request to a transaction
// model. The total price is always computed server-side from unit price and
// quantity; a client-supplied total is never trusted.
func NewTransactionFromCreateRequest(req *CreateTransactionRequest) (*models.Transaction, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, err
	}

	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, err
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		ProductID:   productID,
		SupplierID:  supplierID,
		Type:        req.Type,
		Quantity:    req.Quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		Description: req.Description,
	}, nil
}
