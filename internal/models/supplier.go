package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSupplierNameRequired = errors.New("supplier name is required")
	ErrInvalidSupplierEmail = errors.New("invalid supplier email format")
)

// Supplier is a counterparty goods are purchased from or returned to
type Supplier struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:SupplierID" json:"-"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

func (s *Supplier) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	return s.Validate()
}

func (s *Supplier) Validate() error {
	if s.Name == "" {
		return ErrSupplierNameRequired
	}

	if len(s.Name) > 200 {
		return errors.New("supplier name must be at most 200 characters")
	}

	if s.Email != "" && !emailRegex.MatchString(s.Email) {
		return ErrInvalidSupplierEmail
	}

	return nil
}

func (s *Supplier) TableName() string {
	return "suppliers"
}
