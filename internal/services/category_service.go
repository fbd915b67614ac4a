package services

import (
	"errors"
	"fmt"
	"log/slog"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/models"
	"inventory-backend/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryInUse = errors.New("category still has products assigned to it")
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create creates a new category
func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := dto.NewCategoryFromCreateRequest(req)

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		"category_id", category.ID,
		"name", category.Name)

	return category, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(id uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// GetAll lists categories with pagination
func (s *CategoryService) GetAll(offset, limit int) ([]models.Category, int64, error) {
	return s.categoryRepo.GetAll(offset, limit)
}

// Update applies the updatable fields to an existing category
func (s *CategoryService) Update(id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	dto.ApplyCategoryUpdate(category, req)

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	s.logger.Info("category updated",
		"category_id", category.ID,
		"name", category.Name)

	return category, nil
}

// Delete removes a category. Categories that still have products assigned
// cannot be deleted.
func (s *CategoryService) Delete(id uuid.UUID) error {
	productCount, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if productCount > 0 {
		return ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("category deleted", "category_id", id)

	return nil
}
