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

// SupplierHandler handles supplier management endpoints
type SupplierHandler struct {
	supplierService services.SupplierServiceInterface
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService services.SupplierServiceInterface) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// Create handles supplier creation
// @Summary Create a supplier
// @Tags Suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} SuccessResponse{data=dto.SupplierResponse} "Supplier created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 422 {object} errors.ErrorResponse "Supplier already exists - SUPPLIER_002"
// @Router /suppliers [post]
func (h *SupplierHandler) Create(c echo.Context) error {
	var req dto.CreateSupplierRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	supplier, err := h.supplierService.Create(&req)
	if err != nil {
		if err == repositories.ErrSupplierAlreadyExists {
			return SendError(c, errors.SupplierAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.ToSupplierResponse(supplier),
		Message: "Supplier created successfully",
	})
}

// GetByID returns a single supplier
// @Summary Get a supplier
// @Tags Suppliers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} SuccessResponse{data=dto.SupplierResponse} "Supplier"
// @Failure 400 {object} errors.ErrorResponse "Invalid ID - SUPPLIER_004"
// @Failure 404 {object} errors.ErrorResponse "Supplier not found - SUPPLIER_001"
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.SupplierInvalidID)
	}

	supplier, err := h.supplierService.GetByID(id)
	if err != nil {
		if err == repositories.ErrSupplierNotFound {
			return SendError(c, errors.SupplierNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToSupplierResponse(supplier),
	})
}

// List returns a page of suppliers
// @Summary List suppliers
// @Tags Suppliers
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListSuppliersResponse "Suppliers"
// @Router /suppliers [get]
func (h *SupplierHandler) List(c echo.Context) error {
	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}
	params.Normalize()

	suppliers, total, err := h.supplierService.GetAll(params.Offset(), params.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListSuppliersResponse{
		Suppliers:  dto.ToSupplierResponses(suppliers),
		Pagination: dto.NewPaginationMeta(params, total),
	})
}

// Update handles supplier updates
// @Summary Update a supplier
// @Tags Suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param request body dto.UpdateSupplierRequest true "Supplier details"
// @Success 200 {object} SuccessResponse{data=dto.SupplierResponse} "Supplier updated"
// @Failure 404 {object} errors.ErrorResponse "Supplier not found - SUPPLIER_001"
// @Failure 422 {object} errors.ErrorResponse "Supplier name taken - SUPPLIER_002"
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.SupplierInvalidID)
	}

	var req dto.UpdateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	supplier, err := h.supplierService.Update(id, &req)
	if err != nil {
		switch err {
		case repositories.ErrSupplierNotFound:
			return SendError(c, errors.SupplierNotFound)
		case repositories.ErrSupplierAlreadyExists:
			return SendError(c, errors.SupplierAlreadyExists)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.ToSupplierResponse(supplier),
		Message: "Supplier updated successfully",
	})
}

// Delete handles supplier deletion
// @Summary Delete a supplier
// @Description Delete a supplier that has no transactions recorded against it
// @Tags Suppliers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} SuccessResponse{message=string} "Supplier deleted"
// @Failure 404 {object} errors.ErrorResponse "Supplier not found - SUPPLIER_001"
// @Failure 409 {object} errors.ErrorResponse "Supplier in use - SUPPLIER_003"
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.SupplierInvalidID)
	}

	if err := h.supplierService.Delete(id); err != nil {
		switch err {
		case repositories.ErrSupplierNotFound:
			return SendError(c, errors.SupplierNotFound)
		case services.ErrSupplierInUse:
			return SendError(c, errors.SupplierInUse)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Supplier deleted successfully",
	})
}
