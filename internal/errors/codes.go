package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_006"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserInactive      ErrorCode = "USER_003"
	UserInvalidID     ErrorCode = "USER_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInUse         ErrorCode = "CATEGORY_003"
	CategoryInvalidID     ErrorCode = "CATEGORY_004"
)

// Product error codes (PRODUCT_*)
const (
	ProductNotFound      ErrorCode = "PRODUCT_001"
	ProductAlreadyExists ErrorCode = "PRODUCT_002"
	ProductInvalidID     ErrorCode = "PRODUCT_003"
	ProductInvalidPrice  ErrorCode = "PRODUCT_004"
	ProductInUse         ErrorCode = "PRODUCT_005"
)

// Supplier error codes (SUPPLIER_*)
const (
	SupplierNotFound      ErrorCode = "SUPPLIER_001"
	SupplierAlreadyExists ErrorCode = "SUPPLIER_002"
	SupplierInUse         ErrorCode = "SUPPLIER_003"
	SupplierInvalidID     ErrorCode = "SUPPLIER_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound          ErrorCode = "TRANSACTION_001"
	TransactionInvalidQuantity   ErrorCode = "TRANSACTION_002"
	TransactionInsufficientStock ErrorCode = "TRANSACTION_003"
	TransactionInvalidType       ErrorCode = "TRANSACTION_004"
	TransactionInvalidID         ErrorCode = "TRANSACTION_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthAccountLocked:          "Account is locked or disabled",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidPhone:  "Invalid phone number format",
	ValidationInvalidDate:   "Invalid date format or range",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "A user with this email already exists",
	UserInactive:      "User account is inactive or suspended",
	UserInvalidID:     "Invalid user ID format",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInUse:         "Category still has products assigned to it",
	CategoryInvalidID:     "Invalid category ID format",

	// Product errors
	ProductNotFound:      "Product not found",
	ProductAlreadyExists: "A product with this SKU already exists",
	ProductInvalidID:     "Invalid product ID format",
	ProductInvalidPrice:  "Invalid product price",
	ProductInUse:         "Product still has transactions recorded against it",

	// Supplier errors
	SupplierNotFound:      "Supplier not found",
	SupplierAlreadyExists: "A supplier with this name already exists",
	SupplierInUse:         "Supplier still has transactions recorded against it",
	SupplierInvalidID:     "Invalid supplier ID format",

	// Transaction errors
	TransactionNotFound:          "Transaction not found",
	TransactionInvalidQuantity:   "Invalid transaction quantity",
	TransactionInsufficientStock: "Insufficient product stock for this transaction",
	TransactionInvalidType:       "Invalid transaction type",
	TransactionInvalidID:         "Invalid transaction ID format",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
