package validation

import (
	"reflect"
	"regexp"
	"strings"

	"inventory-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("sku", validateSKU)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("user_role", validateUserRole)
	_ = v.RegisterValidation("month", validateMonth)
	_ = v.RegisterValidation("positive_quantity", validatePositiveQuantity)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateSKU validates a stock-keeping-unit code.
// Format: uppercase letters, digits and dashes, 3-50 characters.
func validateSKU(fl validator.FieldLevel) bool {
	sku := fl.Field().String()
	if sku == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[A-Z0-9-]{3,50}$`, sku)
	return matched
}

// validateTransactionType validates that the type is one of the stock movement kinds
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateUserRole validates that the role is one of the known roles
func validateUserRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	return role == models.RoleStaff || role == models.RoleAdmin
}

// validateMonth validates a calendar month number
func validateMonth(fl validator.FieldLevel) bool {
	month := fl.Field().Int()
	return month >= 1 && month <= 12
}

// validatePositiveQuantity validates that a quantity is greater than 0
func validatePositiveQuantity(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	default:
		return false
	}
}
