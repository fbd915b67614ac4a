package dto

import (
	"time"

	"inventory-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest contains data for creating a product
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	SKU         string `json:"sku" validate:"omitempty,sku"`
	Description string `json:"description" validate:"max=2000"`
	Price       string `json:"price" validate:"required"`
	Stock       int    `json:"stock" validate:"gte=0"`
	CategoryID  string `json:"categoryId" validate:"required,uuid"`
}

// UpdateProductRequest contains data for updating a product
type UpdateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Price       string `json:"price" validate:"required"`
	CategoryID  string `json:"categoryId" validate:"required,uuid"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Description  string    `json:"description,omitempty"`
	Price        string    `json:"price"`
	Stock        int       `json:"stock"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListProductsResponse represents a page of products
type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination PaginationMeta    `json:"pagination"`
}

// ToProductResponse maps a product model to its API representation.
// The category name is included only when the association was preloaded.
func ToProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:           product.ID.String(),
		Name:         product.Name,
		SKU:          product.SKU,
		Description:  product.Description,
		Price:        product.Price.StringFixed(2),
		Stock:        product.Stock,
		CategoryID:   product.CategoryID.String(),
		CategoryName: product.Category.Name,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}

// ToProductResponses maps a slice of product models
func ToProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// NewProductFromCreateRequest maps a create request to a product model.
// Price and category ID are parsed; parse failures surface as errors so
// the handler can answer with a validation error instead of storing junk.
func NewProductFromCreateRequest(req *CreateProductRequest) (*models.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, err
	}

	return &models.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		CategoryID:  categoryID,
	}, nil
}

// ApplyProductUpdate copies the updatable fields onto an existing product.
// Stock is deliberately not updatable here: it only moves through
// transactions.
func ApplyProductUpdate(product *models.Product, req *UpdateProductRequest) error {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = price
	product.CategoryID = categoryID
	return nil
}
