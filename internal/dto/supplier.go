package dto

import (
	"time"

	"inventory-backend/internal/models"
)

// CreateSupplierRequest contains data for creating a supplier
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=50"`
	Address string `json:"address" validate:"max=1000"`
}

// UpdateSupplierRequest contains data for updating a supplier
type UpdateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=50"`
	Address string `json:"address" validate:"max=1000"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListSuppliersResponse represents a page of suppliers
type ListSuppliersResponse struct {
	Suppliers  []SupplierResponse `json:"suppliers"`
	Pagination PaginationMeta     `json:"pagination"`
}

// ToSupplierResponse maps a supplier model to its API representation
func ToSupplierResponse(supplier *models.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        supplier.ID.String(),
		Name:      supplier.Name,
		Email:     supplier.Email,
		Phone:     supplier.Phone,
		Address:   supplier.Address,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
}

// ToSupplierResponses maps a slice of supplier models
func ToSupplierResponses(suppliers []models.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}

// NewSupplierFromCreateRequest maps a create request to a supplier model
func NewSupplierFromCreateRequest(req *CreateSupplierRequest) *models.Supplier {
	return &models.Supplier{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
}

// ApplySupplierUpdate copies the updatable fields onto an existing supplier
func ApplySupplierUpdate(supplier *models.Supplier, req *UpdateSupplierRequest) {
	supplier.Name = req.Name
	supplier.Email = req.Email
	supplier.Phone = req.Phone
	supplier.Address = req.Address
}
