package handlers

import (
	"inventory-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates an Echo validator backed by the shared validation
// rules (sku, transaction_type, user_role, month, positive_quantity)
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.NewValidator().GetValidate()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
