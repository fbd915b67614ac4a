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

// DefaultLowStockThreshold is used when the low-stock listing is called
// without an explicit threshold
const DefaultLowStockThreshold = 10

// ProductHandler handles product management endpoints
type ProductHandler struct {
	productService services.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService services.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// Create handles product creation
// @Summary Create a product
// @Description Create a product with a price, initial stock, and category. A SKU is generated when omitted.
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product details"
// @Success 201 {object} SuccessResponse{data=dto.ProductResponse} "Product created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or PRODUCT_004"
// @Failure 404 {object} errors.ErrorResponse "Category not found - CATEGORY_001"
// @Failure 422 {object} errors.ErrorResponse "SKU already exists - PRODUCT_002"
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req dto.CreateProductRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	product, err := h.productService.Create(&req)
	if err != nil {
		switch err {
		case services.ErrNegativePrice:
			return SendError(c, errors.ProductInvalidPrice, errors.WithDetails("Price cannot be negative"))
		case repositories.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case repositories.ErrProductAlreadyExists:
			return SendError(c, errors.ProductAlreadyExists)
		default:
			if isInvalidPrice(err) {
				return SendError(c, errors.ProductInvalidPrice)
			}
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.ToProductResponse(product),
		Message: "Product created successfully",
	})
}

// GetByID returns a single product with its category
// @Summary Get a product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} SuccessResponse{data=dto.ProductResponse} "Product"
// @Failure 400 {object} errors.ErrorResponse "Invalid ID - PRODUCT_003"
// @Failure 404 {object} errors.ErrorResponse "Product not found - PRODUCT_001"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ProductInvalidID)
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		if err == repositories.ErrProductNotFound {
			return SendError(c, errors.ProductNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToProductResponse(product),
	})
}

// List returns a page of products, optionally filtered by category
// @Summary List products
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param categoryId query string false "Filter by category ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListProductsResponse "Products"
// @Failure 400 {object} errors.ErrorResponse "Invalid category ID - CATEGORY_004"
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}
	params.Normalize()

	categoryID := uuid.Nil
	if raw := c.QueryParam("categoryId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return SendError(c, errors.CategoryInvalidID)
		}
		categoryID = parsed
	}

	products, total, err := h.productService.GetAll(categoryID, params.Offset(), params.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListProductsResponse{
		Products:   dto.ToProductResponses(products),
		Pagination: dto.NewPaginationMeta(params, total),
	})
}

// LowStock returns products whose stock is at or below the threshold
// @Summary List low-stock products
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param threshold query int false "Stock threshold" default(10)
// @Success 200 {object} SuccessResponse{data=[]dto.ProductResponse} "Low-stock products"
// @Router /products/low-stock [get]
func (h *ProductHandler) LowStock(c echo.Context) error {
	threshold := getIntParam(c, "threshold", DefaultLowStockThreshold)

	products, err := h.productService.GetLowStock(threshold)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToProductResponses(products),
	})
}

// Update handles product updates. Stock is not updatable here; it only
// moves through recorded transactions.
// @Summary Update a product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Product details"
// @Success 200 {object} SuccessResponse{data=dto.ProductResponse} "Product updated"
// @Failure 404 {object} errors.ErrorResponse "Product not found - PRODUCT_001"
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ProductInvalidID)
	}

	var req dto.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	product, err := h.productService.Update(id, &req)
	if err != nil {
		switch err {
		case repositories.ErrProductNotFound:
			return SendError(c, errors.ProductNotFound)
		case repositories.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case services.ErrNegativePrice:
			return SendError(c, errors.ProductInvalidPrice, errors.WithDetails("Price cannot be negative"))
		default:
			if isInvalidPrice(err) {
				return SendError(c, errors.ProductInvalidPrice)
			}
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.ToProductResponse(product),
		Message: "Product updated successfully",
	})
}

// Delete handles product deletion
// @Summary Delete a product
// @Description Delete a product that has no transactions recorded against it
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} SuccessResponse{message=string} "Product deleted"
// @Failure 404 {object} errors.ErrorResponse "Product not found - PRODUCT_001"
// @Failure 409 {object} errors.ErrorResponse "Product in use - PRODUCT_005"
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ProductInvalidID)
	}

	if err := h.productService.Delete(id); err != nil {
		switch err {
		case repositories.ErrProductNotFound:
			return SendError(c, errors.ProductNotFound)
		case services.ErrProductInUse:
			return SendError(c, errors.ProductInUse)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Product deleted successfully",
	})
}
