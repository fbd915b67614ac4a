package handlers

import (
	"net/http"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/errors"
	"inventory-backend/internal/repositories"
	"inventory-backend/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category management endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create handles category creation
// @Summary Create a category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} SuccessResponse{data=dto.CategoryResponse} "Category created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 422 {object} errors.ErrorResponse "Category already exists - CATEGORY_002"
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req dto.CreateCategoryRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		if err == repositories.ErrCategoryAlreadyExists {
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.ToCategoryResponse(category),
		Message: "Category created successfully",
	})
}

// GetByID returns a single category
// @Summary Get a category
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} SuccessResponse{data=dto.CategoryResponse} "Category"
// @Failure 400 {object} errors.ErrorResponse "Invalid ID - CATEGORY_004"
// @Failure 404 {object} errors.ErrorResponse "Category not found - CATEGORY_001"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	category, err := h.categoryService.GetByID(id)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToCategoryResponse(category),
	})
}

// List returns a page of categories
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListCategoriesResponse "Categories"
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}
	params.Normalize()

	categories, total, err := h.categoryService.GetAll(params.Offset(), params.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListCategoriesResponse{
		Categories: dto.ToCategoryResponses(categories),
		Pagination: dto.NewPaginationMeta(params, total),
	})
}

// Update handles category updates
// @Summary Update a category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Category details"
// @Success 200 {object} SuccessResponse{data=dto.CategoryResponse} "Category updated"
// @Failure 404 {object} errors.ErrorResponse "Category not found - CATEGORY_001"
// @Failure 422 {object} errors.ErrorResponse "Category name taken - CATEGORY_002"
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(id, &req)
	if err != nil {
		switch err {
		case repositories.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case repositories.ErrCategoryAlreadyExists:
			return SendError(c, errors.CategoryAlreadyExists)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.ToCategoryResponse(category),
		Message: "Category updated successfully",
	})
}

// Delete handles category deletion
// @Summary Delete a category
// @Description Delete a category that has no products assigned to it
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} SuccessResponse{message=string} "Category deleted"
// @Failure 404 {object} errors.ErrorResponse "Category not found - CATEGORY_001"
// @Failure 409 {object} errors.ErrorResponse "Category in use - CATEGORY_003"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	if err := h.categoryService.Delete(id); err != nil {
		switch err {
		case repositories.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case services.ErrCategoryInUse:
			return SendError(c, errors.CategoryInUse)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Category deleted successfully",
	})
}
