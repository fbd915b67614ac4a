package dto

import (
	"time"

	"inventory-backend/internal/models"
)

// CreateCategoryRequest contains data for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateCategoryRequest contains data for updating a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListCategoriesResponse represents a page of categories
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Pagination PaginationMeta     `json:"pagination"`
}

// ToCategoryResponse maps a category model to its API representation
func ToCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// ToCategoryResponses maps a slice of category models
func ToCategoryResponses(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// NewCategoryFromCreateRequest maps a create request to a category model
func NewCategoryFromCreateRequest(req *CreateCategoryRequest) *models.Category {
	return &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
}

// ApplyCategoryUpdate copies the updatable fields onto an existing category
func ApplyCategoryUpdate(category *models.Category, req *UpdateCategoryRequest) {
	category.Name = req.Name
	category.Description = req.Description
}
