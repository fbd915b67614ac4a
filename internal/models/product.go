package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrNegativePrice       = errors.New("product price must not be negative")
	ErrNegativeStock       = errors.New("product stock must not be negative")
)

// Product is a stock-keeping unit tracked by the inventory
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"type:varchar(200);not null;index" json:"name"`
	SKU         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.SKU == "" {
		p.SKU = GenerateSKU()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Product) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	return p.Validate()
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrProductNameRequired
	}

	if p.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}

	if p.Price.IsNegative() {
		return ErrNegativePrice
	}

	if p.Stock < 0 {
		return ErrNegativeStock
	}

	return nil
}

// HasSufficientStock reports whether the product can cover a movement of the given size
func (p *Product) HasSufficientStock(quantity int) bool {
	return p.Stock >= quantity
}

// IsInStock returns true if any units are on hand
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

func (p *Product) TableName() string {
	return "products"
}

// GenerateSKU generates a unique stock-keeping-unit code
func GenerateSKU() string {
	return "SKU-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102")
}
