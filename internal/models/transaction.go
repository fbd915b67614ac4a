package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypePurchase = "PURCHASE"
	TransactionTypeSale     = "SALE"
	TransactionTypeReturn   = "RETURN"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidQuantity        = errors.New("transaction quantity must be positive")
	ErrTotalPriceMismatch     = errors.New("total price does not match unit price and quantity")
)

// Transaction records a single stock movement against a product.
// Rows are append-only: once written they are never updated, and the
// creation timestamp is fixed at insert time.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	SupplierID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Type            string          `gorm:"type:varchar(20);not null" json:"type"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_price"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	ReferenceNumber string          `gorm:"type:varchar(100);index" json:"reference_number"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"created_at"`

	// Associations
	Product  Product  `gorm:"foreignKey:ProductID" json:"-"`
	Supplier Supplier `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.ReferenceNumber == "" {
		t.ReferenceNumber = GenerateTransactionReference()
	}

	// Keep a caller-supplied timestamp (for tests and imports); otherwise stamp now
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.ProductID == uuid.Nil {
		return errors.New("product ID is required")
	}

	if t.SupplierID == uuid.Nil {
		return errors.New("supplier ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	if t.UnitPrice.IsNegative() {
		return errors.New("unit price must not be negative")
	}

	if err := t.ensureTotalIsCorrect(); err != nil {
		return err
	}

	return nil
}

// StockDelta returns the signed stock change this transaction applies
// to its product: inbound movements are positive, sales negative.
func (t *Transaction) StockDelta() int {
	switch t.Type {
	case TransactionTypePurchase, TransactionTypeReturn:
		return t.Quantity
	case TransactionTypeSale:
		return -t.Quantity
	default:
		return 0
	}
}

// IsInbound returns true for movements that add stock
func (t *Transaction) IsInbound() bool {
	return t.Type == TransactionTypePurchase || t.Type == TransactionTypeReturn
}

// IsOutbound returns true for movements that remove stock
func (t *Transaction) IsOutbound() bool {
	return t.Type == TransactionTypeSale
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypePurchase, TransactionTypeSale, TransactionTypeReturn:
		return true
	default:
		return false
	}
}

// AllTransactionTypes returns every valid transaction type
func AllTransactionTypes() []string {
	return []string{TransactionTypePurchase, TransactionTypeSale, TransactionTypeReturn}
}

// GenerateTransactionReference generates a unique transaction reference
func GenerateTransactionReference() string {
	return "TXN-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}

func (t *Transaction) ensureTotalIsCorrect() error {
	expected := t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
	if !expected.Equal(t.TotalPrice) {
		return ErrTotalPriceMismatch
	}
	return nil
}
